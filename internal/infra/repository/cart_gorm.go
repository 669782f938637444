package repository

import (
	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを取得
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	if !isUUID(userID) {
		return model.Cart{}, repo.ErrNotFound
	}
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	if err := cart.Recalculate(); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// user_id で upsert。既存行はIDと作成日時を残して明細・合計だけ書き換える
func (r *CartGormRepository) Save(ctx context.Context, cart model.Cart) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "total_amount", "updated_at"}),
		}).
		Create(&cart).Error
}

func (r *CartGormRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return nil
	}
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Cart{}).Error
}
