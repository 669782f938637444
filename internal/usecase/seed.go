package usecase

import (
	_ "embed"
	"encoding/json"

	"agarwood/internal/domain/model"
)

//go:embed seed/products.json
var seedProductsJSON []byte

// 毎回新しいスライスを返す
func sampleProducts() ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(seedProductsJSON, &products); err != nil {
		return nil, err
	}
	return products, nil
}
