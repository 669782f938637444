package memstore

import (
	"context"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

type CartRepository struct {
	s      *Store
	locked bool
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart
	err := r.s.run(ctx, r.locked, func(d *dataset) error {
		c, ok := d.carts[userID]
		if !ok {
			return repo.ErrNotFound
		}
		cart = c.Clone()
		return nil
	})
	return cart, err
}

func (r *CartRepository) Save(ctx context.Context, cart model.Cart) error {
	return r.s.run(ctx, r.locked, func(d *dataset) error {
		if cart.UserID == nil {
			return repo.ErrNotFound
		}
		//既存カートがあればIDと作成日時は引き継ぐ
		if cur, ok := d.carts[*cart.UserID]; ok {
			cart.ID = cur.ID
			cart.CreatedAt = cur.CreatedAt
		}
		d.carts[*cart.UserID] = cart.Clone()
		return nil
	})
}

func (r *CartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.s.run(ctx, r.locked, func(d *dataset) error {
		delete(d.carts, userID)
		return nil
	})
}
