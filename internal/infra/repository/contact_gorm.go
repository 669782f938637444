package repository

import (
	"context"

	"agarwood/internal/domain/model"

	"gorm.io/gorm"
)

type ContactGormRepository struct {
	db *gorm.DB
}

// DI
func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(&msg).Error
}

func (r *ContactGormRepository) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	msgs := []model.ContactMessage{}
	tx := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&msgs).Error; err != nil {
		return []model.ContactMessage{}, err
	}
	return msgs, nil
}
