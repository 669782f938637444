package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agarwood/internal/domain/model"
	"agarwood/internal/infra/memstore"
	repo "agarwood/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDGen struct {
	prefix string
	n      int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)}
}

// HTTPErrorのステータスとメッセージを確認
func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := AsHTTPError(err)
	require.True(t, ok, "want HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	if msg != "" {
		assert.Equal(t, msg, he.Message)
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	assertHTTPError(t, err, status, "")
}


func seedProduct(t *testing.T, s *memstore.Store, id string, price int64) model.Product {
	t.Helper()
	p := model.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Vòng Tay",
		ImageURL: "https://img.example/" + id,
	}
	require.NoError(t, s.Products().Create(context.Background(), p))
	return p
}

func seedUser(t *testing.T, s *memstore.Store, id string) model.User {
	t.Helper()
	u := model.User{ID: id, Email: id + "@example.com", FullName: "User " + id}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

// 失敗系テスト用

type CartRepoMock struct {
	mock.Mock
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, cart model.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *CartRepoMock) DeleteByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type OrderRepoMock struct {
	mock.Mock
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string, limit int) ([]model.Order, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderRepoMock) FindByIDAndUserID(ctx context.Context, orderID, userID string) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Get(0).(model.Order), args.Error(1)
}

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) Create(ctx context.Context, user model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user model.User) error {
	return m.Called(ctx, user).Error(0)
}

// モックのリポジトリをそのまま渡すだけのTx
type txMock struct {
	orders repo.OrderRepository
	carts  repo.CartRepository
	users  repo.UserRepository
}

func (m *txMock) Orders() repo.OrderRepository { return m.orders }
func (m *txMock) Carts() repo.CartRepository   { return m.carts }
func (m *txMock) Users() repo.UserRepository   { return m.users }

func (m *txMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m)
}
