package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

const (
	productsCollection  = "produtos"
	customersCollection = "clientes"
	quotesCollection    = "orcamentos"
)

// ErrNotFound is returned when an overwrite or delete matches no document.
var ErrNotFound = errors.New("document not found")

// ProductCursor is the keyset position of the last record of a fetched page.
// Pages are ordered by (name, _id); the cursor restarts the scan strictly
// after that pair.
type ProductCursor struct {
	Name string
	ID   primitive.ObjectID
}

// Repository gives access to the three application collections.
type Repository struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// ProductPage returns up to limit products ordered by (name, _id) ascending,
// starting strictly after the cursor. A nil cursor starts from the beginning.
func (r *Repository) ProductPage(ctx context.Context, after *ProductCursor, limit int64) ([]models.Product, error) {
	filter := bson.D{}
	if after != nil {
		filter = bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: bson.D{{Key: "$gt", Value: after.Name}}}},
			bson.D{
				{Key: "name", Value: after.Name},
				{Key: "_id", Value: bson.D{{Key: "$gt", Value: after.ID}}},
			},
		}}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	cur, err := r.collection(productsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query product page: %w", err)
	}

	var page []models.Product
	if err := cur.All(ctx, &page); err != nil {
		return nil, fmt.Errorf("decode product page: %w", err)
	}
	return page, nil
}

// ListProducts returns the whole catalog, used by the quote autofill lookup.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := r.collection(productsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	var out []models.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

// InsertProduct persists a new product and returns it with the generated id.
func (r *Repository) InsertProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = primitive.NilObjectID
	res, err := r.collection(productsCollection).InsertOne(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// ReplaceProduct overwrites the full document identified by p.ID.
func (r *Repository) ReplaceProduct(ctx context.Context, p models.Product) error {
	res, err := r.collection(productsCollection).ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace product %s: %w", p.ID.Hex(), ErrNotFound)
	}
	return nil
}

// DeleteProduct removes a product by its hex identifier.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	return r.deleteByID(ctx, productsCollection, id)
}

// ListCustomers returns all registered customers.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	cur, err := r.collection(customersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	var out []models.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return out, nil
}

// GetCustomer fetches one customer by id.
func (r *Repository) GetCustomer(ctx context.Context, id primitive.ObjectID) (models.Customer, error) {
	var out models.Customer
	err := r.collection(customersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Customer{}, fmt.Errorf("get customer %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return out, nil
}

// InsertCustomer persists a new customer and returns it with the generated id.
func (r *Repository) InsertCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	c.ID = primitive.NilObjectID
	res, err := r.collection(customersCollection).InsertOne(ctx, c)
	if err != nil {
		return models.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

// ReplaceCustomer overwrites the full document identified by c.ID.
func (r *Repository) ReplaceCustomer(ctx context.Context, c models.Customer) error {
	res, err := r.collection(customersCollection).ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("replace customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace customer %s: %w", c.ID.Hex(), ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes a customer by its hex identifier. Quotes referencing
// the customer keep their denormalized copies and are not touched.
func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	return r.deleteByID(ctx, customersCollection, id)
}

// ListQuotes returns all quotes.
func (r *Repository) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	cur, err := r.collection(quotesCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}

	var out []models.Quote
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	return out, nil
}

// InsertQuote persists a new quote and returns it with the generated id.
func (r *Repository) InsertQuote(ctx context.Context, q models.Quote) (models.Quote, error) {
	q.ID = primitive.NilObjectID
	res, err := r.collection(quotesCollection).InsertOne(ctx, q)
	if err != nil {
		return models.Quote{}, fmt.Errorf("insert quote: %w", err)
	}
	q.ID = res.InsertedID.(primitive.ObjectID)
	return q, nil
}

// ReplaceQuote overwrites the full document identified by q.ID.
func (r *Repository) ReplaceQuote(ctx context.Context, q models.Quote) error {
	res, err := r.collection(quotesCollection).ReplaceOne(ctx, bson.M{"_id": q.ID}, q)
	if err != nil {
		return fmt.Errorf("replace quote: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace quote %s: %w", q.ID.Hex(), ErrNotFound)
	}
	return nil
}

// DeleteQuote removes a quote by its hex identifier.
func (r *Repository) DeleteQuote(ctx context.Context, id string) error {
	return r.deleteByID(ctx, quotesCollection, id)
}

func (r *Repository) deleteByID(ctx context.Context, coll string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", id, err)
	}

	res, err := r.collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", coll, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s from %s: %w", id, coll, ErrNotFound)
	}
	return nil
}
