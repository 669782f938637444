package mongostore

import (
	"context"
	"regexp"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	col *mongo.Collection
}

func productFilter(q repo.ProductListQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	if q.Search != "" {
		//入力は正規表現として解釈しない
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"tags": re},
		}
	}
	return filter
}

func (r *ProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	opts := options.Find().SetSkip(int64(q.Skip))
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cur, err := r.col.Find(ctx, productFilter(q), opts)
	if err != nil {
		return []model.Product{}, err
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return []model.Product{}, err
	}
	for i := range products {
		products[i].FillEmpty()
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return model.Product{}, notFound(err)
	}
	p.FillEmpty()
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProductRepository) CreateBulk(ctx context.Context, ps []model.Product) error {
	if len(ps) == 0 {
		return nil
	}
	docs := make([]any, 0, len(ps))
	for _, p := range ps {
		docs = append(docs, p)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	vals, err := r.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return []string{}, err
	}
	cats := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			cats = append(cats, s)
		}
	}
	return cats, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
