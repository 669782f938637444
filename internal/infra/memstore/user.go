package memstore

import (
	"context"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

type UserRepository struct {
	s      *Store
	locked bool
}

func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	return r.s.run(ctx, r.locked, func(d *dataset) error {
		for _, u := range d.users {
			if u.Email == user.Email {
				return repo.ErrDuplicateEmail
			}
		}
		d.users[user.ID] = user
		return nil
	})
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	var found model.User
	err := r.s.run(ctx, r.locked, func(d *dataset) error {
		u, ok := d.users[userID]
		if !ok {
			return repo.ErrNotFound
		}
		found = u
		return nil
	})
	return found, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var found model.User
	err := r.s.run(ctx, r.locked, func(d *dataset) error {
		for _, u := range d.users {
			if u.Email == email {
				found = u
				return nil
			}
		}
		return repo.ErrNotFound
	})
	return found, err
}

func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	return r.s.run(ctx, r.locked, func(d *dataset) error {
		if _, ok := d.users[user.ID]; !ok {
			return repo.ErrNotFound
		}
		d.users[user.ID] = user
		return nil
	})
}
