package mongostore

import (
	"context"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

// email の unique index 違反を重複として返す
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	_, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return repo.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	if err := r.col.FindOne(ctx, bson.M{"id": userID}).Decode(&u); err != nil {
		return model.User{}, notFound(err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return model.User{}, notFound(err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{"$set": bson.M{
		"full_name":  user.FullName,
		"phone":      user.Phone,
		"address":    user.Address,
		"city":       user.City,
		"district":   user.District,
		"ward":       user.Ward,
		"zip_code":   user.ZipCode,
		"updated_at": user.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
