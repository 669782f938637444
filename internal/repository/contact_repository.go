package repository

import (
	"agarwood/internal/domain/model"
	"context"
)

type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) error
	// 新しい順
	List(ctx context.Context, limit int) ([]model.ContactMessage, error)
}
