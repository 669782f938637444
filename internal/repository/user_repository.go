package repository

import (
	"agarwood/internal/domain/model"
	"context"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。メール重複は ErrDuplicateEmail
	Create(ctx context.Context, user model.User) error
	FindByID(ctx context.Context, userID string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	//プロフィール項目の更新
	Update(ctx context.Context, user model.User) error
}
