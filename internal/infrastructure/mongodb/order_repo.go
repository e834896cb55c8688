package mongodb

import (
	"context"
	"fmt"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type orderDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Product  bson.ObjectID `bson:"product"`
	Quantity int           `bson:"quantity"`
}

// orderWithProduct is the shape produced by the $lookup pipeline.
type orderWithProduct struct {
	ID       bson.ObjectID `bson:"_id"`
	Product  bson.ObjectID `bson:"product"`
	Quantity int           `bson:"quantity"`
	Products []productDoc  `bson:"productDocs"`
}

func (d *orderWithProduct) toDomain() *domain.Order {
	order := &domain.Order{
		ID:        d.ID.Hex(),
		ProductID: d.Product.Hex(),
		Quantity:  d.Quantity,
	}
	if len(d.Products) > 0 {
		order.Product = d.Products[0].toDomain()
	}
	return order
}

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{coll: client.db.Collection(ordersCollection)}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	productID, err := bson.ObjectIDFromHex(order.ProductID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	doc := orderDoc{
		ID:       bson.NewObjectID(),
		Product:  productID,
		Quantity: order.Quantity,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	return &domain.Order{
		ID:        doc.ID.Hex(),
		ProductID: doc.Product.Hex(),
		Quantity:  doc.Quantity,
	}, nil
}

// lookupStage joins the referenced product into productDocs.
func lookupStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         productsCollection,
		"localField":   "product",
		"foreignField": "_id",
		"as":           "productDocs",
	}}}
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{lookupStage()})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var docs []orderWithProduct
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(docs))
	for i := range docs {
		orders = append(orders, docs[i].toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	matchStage := bson.D{{Key: "$match", Value: bson.M{"_id": oid}}}
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{matchStage, lookupStage()})
	if err != nil {
		return nil, fmt.Errorf("find order by id: %w", err)
	}

	var docs []orderWithProduct
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return docs[0].toDomain(), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
