package mongostore

import (
	"context"

	"agarwood/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository struct {
	col *mongo.Collection
}

func (r *ContactRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	_, err := r.col.InsertOne(ctx, msg)
	return err
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return []model.ContactMessage{}, err
	}
	msgs := []model.ContactMessage{}
	if err := cur.All(ctx, &msgs); err != nil {
		return []model.ContactMessage{}, err
	}
	return msgs, nil
}
