package model

import "time"

// サイズ違い
type ProductVariation struct {
	Size          string `json:"size" bson:"size"`
	Price         int64  `json:"price" bson:"price"`
	OriginalPrice *int64 `json:"original_price" bson:"original_price"`
	StockQuantity int64  `json:"stock_quantity" bson:"stock_quantity"`
}

type Product struct {
	ID            string             `gorm:"type:uuid;primaryKey" json:"id" bson:"id"`
	Name          string             `gorm:"type:varchar(255);not null" json:"name" bson:"name"`
	Description   string             `gorm:"type:text;not null" json:"description" bson:"description"`
	Price         int64              `gorm:"not null" json:"price" bson:"price"`
	OriginalPrice *int64             `json:"original_price" bson:"original_price"`
	Category      string             `gorm:"type:varchar(100);not null;index" json:"category" bson:"category"`
	ImageURL      string             `gorm:"type:text;not null" json:"image_url" bson:"image_url"`
	Images        []string           `gorm:"serializer:json;type:jsonb;not null" json:"images" bson:"images"`
	Variations    []ProductVariation `gorm:"serializer:json;type:jsonb;not null" json:"variations" bson:"variations"`
	InStock       bool               `gorm:"not null;default:true" json:"in_stock" bson:"in_stock"`
	StockQuantity int64              `gorm:"not null;default:0" json:"stock_quantity" bson:"stock_quantity"`
	Featured      bool               `gorm:"not null;default:false;index" json:"featured" bson:"featured"`
	Rating        float64            `gorm:"not null;default:5" json:"rating" bson:"rating"`
	ReviewsCount  int64              `gorm:"not null;default:0" json:"reviews_count" bson:"reviews_count"`
	Tags          []string           `gorm:"serializer:json;type:jsonb;not null" json:"tags" bson:"tags"`
	CreatedAt     time.Time          `gorm:"not null" json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `gorm:"not null" json:"updated_at" bson:"updated_at"`
}

// バリエーションがあれば基本価格は最安値に揃える
func (p *Product) NormalizePrice() {
	if len(p.Variations) == 0 {
		return
	}
	lowest := p.Variations[0].Price
	for _, v := range p.Variations[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}
	p.Price = lowest
}

// nilのスライスは [] で返す
func (p *Product) FillEmpty() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Variations == nil {
		p.Variations = []ProductVariation{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// CartItem に追加時点の値を写す
func (p Product) Snapshot(quantity int64) CartItem {
	return CartItem{
		ProductID: p.ID,
		Quantity:  quantity,
		Price:     p.Price,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
	}
}
