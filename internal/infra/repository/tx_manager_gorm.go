package repository

import (
	"context"

	repo "agarwood/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders repo.OrderRepository
	carts  repo.CartRepository
	users  repo.UserRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository { return r.orders }
func (r *txReposGorm) Carts() repo.CartRepository   { return r.carts }
func (r *txReposGorm) Users() repo.UserRepository   { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders: NewOrderGormRepository(tx),
			carts:  NewCartGormRepository(tx),
			users:  NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
