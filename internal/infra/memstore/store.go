// Package memstore はプロセス内のリポジトリ実装。開発・テスト用
package memstore

import (
	"context"
	"sync"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

type dataset struct {
	products []model.Product
	carts    map[string]model.Cart
	orders   []model.Order
	users    map[string]model.User
	contacts []model.ContactMessage
}

func newDataset() *dataset {
	return &dataset{
		carts: map[string]model.Cart{},
		users: map[string]model.User{},
	}
}

// ロールバック用のコピー
func (d *dataset) clone() *dataset {
	out := newDataset()
	out.products = append([]model.Product{}, d.products...)
	out.orders = append([]model.Order{}, d.orders...)
	out.contacts = append([]model.ContactMessage{}, d.contacts...)
	for k, v := range d.carts {
		out.carts[k] = v.Clone()
	}
	for k, v := range d.users {
		out.users[k] = v
	}
	return out
}

// Store は全リポジトリで1つのロックを共有する
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// DI
func New() *Store {
	return &Store{data: newDataset()}
}

// locked=true はWithinTxの中（ロック取得済み）
func (s *Store) run(ctx context.Context, locked bool, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }
func (s *Store) Carts() *CartRepository       { return &CartRepository{s: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s: s} }
func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Contacts() *ContactRepository { return &ContactRepository{s: s} }

type txRepos struct {
	s *Store
}

func (r *txRepos) Orders() repo.OrderRepository { return &OrderRepository{s: r.s, locked: true} }
func (r *txRepos) Carts() repo.CartRepository   { return &CartRepository{s: r.s, locked: true} }
func (r *txRepos) Users() repo.UserRepository   { return &UserRepository{s: r.s, locked: true} }

// WithinTx はロックを持ったまま fn を実行し、エラーなら中身を戻す
func (s *Store) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&txRepos{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}
