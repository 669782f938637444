package mongostore

import (
	"context"

	"agarwood/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	col *mongo.Collection
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		return model.Cart{}, notFound(err)
	}
	if err := cart.Recalculate(); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// user_id で upsert。id と created_at は初回だけ書く
func (r *CartRepository) Save(ctx context.Context, cart model.Cart) error {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	update := bson.M{
		"$set": bson.M{
			"items":        items,
			"total_amount": cart.TotalAmount,
			"updated_at":   cart.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":         cart.ID,
			"created_at": cart.CreatedAt,
		},
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"user_id": cart.UserID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *CartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
