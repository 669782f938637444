package repository

import (
	"context"
	"errors"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	return r.db.WithContext(ctx).Create(&order).Error
}

// 新しい順
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]model.Order, error) {
	orders := []model.Order{}
	if !isUUID(userID) {
		return orders, nil
	}
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// 注文IDとユーザーIDの両方が一致したときだけ返す
func (r *OrderGormRepository) FindByIDAndUserID(ctx context.Context, orderID, userID string) (model.Order, error) {
	if !isUUID(orderID) || !isUUID(userID) {
		return model.Order{}, repo.ErrNotFound
	}
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
