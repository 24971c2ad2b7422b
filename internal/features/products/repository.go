package products

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/skincare/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// Repository is the catalog store
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("products")}
}

// List returns products in insertion order. A nil page returns the whole
// catalog.
func (r *Repository) List(ctx context.Context, page *pagination.Request) ([]Product, int64, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	var total int64
	if page != nil {
		count, err := r.collection.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
		total = count
		opts.SetSkip(int64(page.Offset())).SetLimit(int64(page.Limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	if page == nil {
		total = int64(len(products))
	}
	return products, total, nil
}

func (r *Repository) Get(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var product Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}
	return &product, nil
}

func (r *Repository) Create(ctx context.Context, product *Product) error {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// Update applies fields with $set. An empty field set is not an error when
// the product exists.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (UpdateOutcome, error) {
	if len(fields) == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return NoChanges, err
		}
		if !exists {
			return NoChanges, apperrors.ErrNotFound
		}
		return NoChanges, nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return NoChanges, fmt.Errorf("update product %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return NoChanges, apperrors.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return NoChanges, nil
	}
	return Updated, nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *Repository) exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count product %s: %w", id.Hex(), err)
	}
	return count > 0, nil
}
