package memstore

import (
	"context"
	"strings"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	out := []model.Product{}
	err := r.s.run(ctx, false, func(d *dataset) error {
		skipped := 0
		for _, p := range d.products {
			if !matchProduct(p, q) {
				continue
			}
			if skipped < q.Skip {
				skipped++
				continue
			}
			if q.Limit > 0 && len(out) >= q.Limit {
				break
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

func matchProduct(p model.Product, q repo.ProductListQuery) bool {
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.Featured != nil && p.Featured != *q.Featured {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var found model.Product
	err := r.s.run(ctx, false, func(d *dataset) error {
		for _, p := range d.products {
			if p.ID == id {
				found = p
				return nil
			}
		}
		return repo.ErrNotFound
	})
	return found, err
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) error {
	return r.CreateBulk(ctx, []model.Product{p})
}

func (r *ProductRepository) CreateBulk(ctx context.Context, ps []model.Product) error {
	return r.s.run(ctx, false, func(d *dataset) error {
		d.products = append(d.products, ps...)
		return nil
	})
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) error {
	return r.s.run(ctx, false, func(d *dataset) error {
		for i := range d.products {
			if d.products[i].ID == p.ID {
				d.products[i] = p
				return nil
			}
		}
		return repo.ErrNotFound
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.s.run(ctx, false, func(d *dataset) error {
		for i := range d.products {
			if d.products[i].ID == id {
				d.products = append(d.products[:i:i], d.products[i+1:]...)
				return nil
			}
		}
		return repo.ErrNotFound
	})
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := r.s.run(ctx, false, func(d *dataset) error {
		seen := map[string]bool{}
		for _, p := range d.products {
			if seen[p.Category] {
				continue
			}
			seen[p.Category] = true
			out = append(out, p.Category)
		}
		return nil
	})
	return out, err
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.run(ctx, false, func(d *dataset) error {
		n = int64(len(d.products))
		return nil
	})
	return n, err
}
