package repository

import (
	"agarwood/internal/domain/model"
	"context"
)

// 一覧検索
type ProductListQuery struct {
	Category string
	Featured *bool
	// name / description / tags の部分一致（大文字小文字は無視）
	Search string
	Skip   int
	Limit  int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, p model.Product) error
	CreateBulk(ctx context.Context, ps []model.Product) error
	//全項目を上書き。無ければ ErrNotFound
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
