package mongostore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"agarwood/internal/config"
	"agarwood/internal/domain/model"
	"agarwood/internal/infra/db"
	repo "agarwood/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

const testMongoURLEnv = "TEST_MONGO_URL"

// テストごとに別DBを作って最後に捨てる
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv(testMongoURLEnv)
	if url == "" {
		t.Skipf("%s is not set", testMongoURLEnv)
	}

	ctx := context.Background()
	name := "agarwood_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	client, database, err := db.ConnectMongo(ctx, config.Config{MongoURL: url, MongoDB: name})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return New(database)
}

func TestCartRepository_SaveUpsertsByUserID(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	r := s.Carts()
	uid := uuid.NewString()
	first := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)

	c := model.NewCart(uuid.NewString(), uid, first)
	require.NoError(t, c.AddItem(model.CartItem{ProductID: "p1", Quantity: 1, Price: 100}))
	require.NoError(t, r.Save(ctx, c))

	//2回目は $setOnInsert が効かず id と created_at は最初のまま
	later := first.Add(time.Hour)
	next := model.NewCart(uuid.NewString(), uid, later)
	require.NoError(t, next.AddItem(model.CartItem{ProductID: "p2", Quantity: 3, Price: 250}))
	require.NoError(t, r.Save(ctx, next))

	got, err := r.FindByUserID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.True(t, first.Equal(got.CreatedAt), "created_at %v", got.CreatedAt)
	assert.True(t, later.Equal(got.UpdatedAt), "updated_at %v", got.UpdatedAt)
	assert.Equal(t, next.Items, got.Items)
	assert.Equal(t, int64(750), got.TotalAmount)

	n, err := r.col.CountDocuments(ctx, bson.M{"user_id": uid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, r.DeleteByUserID(ctx, uid))
	_, err = r.FindByUserID(ctx, uid)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := openTestStore(t).Orders()
	uid := uuid.NewString()
	base := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)

	mk := func(id, userID string, at time.Time) model.Order {
		return model.Order{
			ID:              id,
			UserID:          &userID,
			OrderNumber:     "ORD-20250517-" + strings.ToUpper(id[len(id)-8:]),
			Items:           []model.OrderItem{{ProductID: "p1", Quantity: 1, Price: 100, Subtotal: 100}},
			Subtotal:        100,
			ShippingFee:     model.ShippingFee,
			TotalAmount:     100 + model.ShippingFee,
			PaymentMethod:   model.PaymentMethodBankTransfer,
			Status:          model.OrderStatusPending,
			CustomerInfo:    map[string]string{"full_name": "An"},
			ShippingAddress: map[string]string{"city": "Huế"},
			CreatedAt:       at,
			UpdatedAt:       at,
		}
	}
	for _, o := range []model.Order{
		mk("o-00000001", uid, base),
		mk("o-00000003", uid, base.Add(time.Minute)),
		mk("o-00000002", uid, base.Add(time.Minute)),
		mk("o-00000009", uuid.NewString(), base.Add(time.Hour)),
	} {
		require.NoError(t, r.Create(ctx, o))
	}

	got, err := r.ListByUserID(ctx, uid, 100)
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"o-00000003", "o-00000002", "o-00000001"}, ids)
	assert.Equal(t, model.PaymentMethodBankTransfer, got[0].PaymentMethod)

	_, err = r.FindByIDAndUserID(ctx, "o-00000001", uuid.NewString())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := openTestStore(t).Users()
	now := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)

	u := model.User{ID: uuid.NewString(), Email: "an@example.com", FullName: "An", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, r.Create(ctx, u))

	u.ID = uuid.NewString()
	assert.ErrorIs(t, r.Create(ctx, u), repo.ErrDuplicateEmail)
}
