package memstore

import (
	"context"
	"sort"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

type OrderRepository struct {
	s      *Store
	locked bool
}

func (r *OrderRepository) Create(ctx context.Context, order model.Order) error {
	return r.s.run(ctx, r.locked, func(d *dataset) error {
		d.orders = append(d.orders, order.Clone())
		return nil
	})
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]model.Order, error) {
	out := []model.Order{}
	err := r.s.run(ctx, r.locked, func(d *dataset) error {
		//後から入れた方を先に
		for i := len(d.orders) - 1; i >= 0; i-- {
			if d.orders[i].OwnedBy(userID) {
				out = append(out, d.orders[i].Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *OrderRepository) FindByIDAndUserID(ctx context.Context, orderID, userID string) (model.Order, error) {
	var found model.Order
	err := r.s.run(ctx, r.locked, func(d *dataset) error {
		for _, o := range d.orders {
			if o.ID == orderID && o.OwnedBy(userID) {
				found = o.Clone()
				return nil
			}
		}
		return repo.ErrNotFound
	})
	return found, err
}
