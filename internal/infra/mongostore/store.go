// Package mongostore は MongoDB のリポジトリ実装。
// ドキュメントは _id ではなく uuid 文字列の id で引く
package mongostore

import (
	"context"
	"errors"

	repo "agarwood/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	productsCollection = "products"
	cartsCollection    = "carts"
	ordersCollection   = "orders"
	usersCollection    = "users"
	contactsCollection = "contacts"
)

type Store struct {
	db *mongo.Database
}

// DI
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{col: s.db.Collection(productsCollection)}
}
func (s *Store) Carts() *CartRepository { return &CartRepository{col: s.db.Collection(cartsCollection)} }
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{col: s.db.Collection(ordersCollection)}
}
func (s *Store) Users() *UserRepository { return &UserRepository{col: s.db.Collection(usersCollection)} }
func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{col: s.db.Collection(contactsCollection)}
}

type txRepos struct {
	s *Store
}

func (r txRepos) Orders() repo.OrderRepository { return r.s.Orders() }
func (r txRepos) Carts() repo.CartRepository   { return r.s.Carts() }
func (r txRepos) Users() repo.UserRepository   { return r.s.Users() }

// WithinTx は順番に実行するだけ。単体サーバーではトランザクションが使えないため
func (s *Store) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(txRepos{s: s})
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repo.ErrNotFound
	}
	return err
}
