package mongostore

import (
	"context"
	"time"

	"agarwood/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// enum は文字列で保存する
type orderDoc struct {
	ID              string            `bson:"id"`
	UserID          *string           `bson:"user_id"`
	OrderNumber     string            `bson:"order_number"`
	Items           []model.OrderItem `bson:"items"`
	Subtotal        int64             `bson:"subtotal"`
	ShippingFee     int64             `bson:"shipping_fee"`
	TotalAmount     int64             `bson:"total_amount"`
	PaymentMethod   string            `bson:"payment_method"`
	Status          string            `bson:"status"`
	CustomerInfo    map[string]string `bson:"customer_info"`
	ShippingAddress map[string]string `bson:"shipping_address"`
	Notes           string            `bson:"notes"`
	CreatedAt       time.Time         `bson:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at"`
}

func toOrderDoc(o model.Order) orderDoc {
	return orderDoc{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		Items:           o.Items,
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod.String(),
		Status:          o.Status.String(),
		CustomerInfo:    o.CustomerInfo,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (d orderDoc) toModel() (model.Order, error) {
	pm, err := model.ParsePaymentMethod(d.PaymentMethod)
	if err != nil {
		return model.Order{}, err
	}
	st, err := model.ParseOrderStatus(d.Status)
	if err != nil {
		return model.Order{}, err
	}
	items := d.Items
	if items == nil {
		items = []model.OrderItem{}
	}
	return model.Order{
		ID:              d.ID,
		UserID:          d.UserID,
		OrderNumber:     d.OrderNumber,
		Items:           items,
		Subtotal:        d.Subtotal,
		ShippingFee:     d.ShippingFee,
		TotalAmount:     d.TotalAmount,
		PaymentMethod:   pm,
		Status:          st,
		CustomerInfo:    d.CustomerInfo,
		ShippingAddress: d.ShippingAddress,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

type OrderRepository struct {
	col *mongo.Collection
}

func (r *OrderRepository) Create(ctx context.Context, order model.Order) error {
	_, err := r.col.InsertOne(ctx, toOrderDoc(order))
	return err
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return []model.Order{}, err
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return []model.Order{}, err
	}

	orders := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toModel()
		if err != nil {
			return []model.Order{}, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) FindByIDAndUserID(ctx context.Context, orderID, userID string) (model.Order, error) {
	var d orderDoc
	if err := r.col.FindOne(ctx, bson.M{"id": orderID, "user_id": userID}).Decode(&d); err != nil {
		return model.Order{}, notFound(err)
	}
	return d.toModel()
}
