package memstore

import (
	"context"

	"agarwood/internal/domain/model"
)

type ContactRepository struct {
	s *Store
}

func (r *ContactRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	return r.s.run(ctx, false, func(d *dataset) error {
		d.contacts = append(d.contacts, msg)
		return nil
	})
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	out := []model.ContactMessage{}
	err := r.s.run(ctx, false, func(d *dataset) error {
		for i := len(d.contacts) - 1; i >= 0; i-- {
			if limit > 0 && len(out) >= limit {
				break
			}
			out = append(out, d.contacts[i])
		}
		return nil
	})
	return out, err
}
