package routines

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// Repository is the routine store. Step mutations are single-document
// update operators so concurrent edits to one routine never lose a write.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("routines")}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("owner_created"),
		},
		{
			Keys:    bson.D{{Key: "products.brand", Value: 1}},
			Options: options.Index().SetName("products_brand"),
		},
	})
	if err != nil {
		return fmt.Errorf("create routines indexes: %w", err)
	}
	return nil
}

// Create stores an empty routine and returns its id
func (r *Repository) Create(ctx context.Context, name, ownerEmail string) (primitive.ObjectID, error) {
	routine := Routine{
		Name:      name,
		UserEmail: ownerEmail,
		Products:  []ProductRef{},
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.collection.InsertOne(ctx, routine)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert routine: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

// ListByOwner returns the owner's routines oldest first
func (r *Repository) ListByOwner(ctx context.Context, ownerEmail string) ([]Routine, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_email": ownerEmail}, opts)
	if err != nil {
		return nil, fmt.Errorf("find routines: %w", err)
	}
	defer cursor.Close(ctx)

	routines := []Routine{}
	if err := cursor.All(ctx, &routines); err != nil {
		return nil, fmt.Errorf("decode routines: %w", err)
	}

	for i := range routines {
		if routines[i].Products == nil {
			routines[i].Products = []ProductRef{}
		}
	}
	return routines, nil
}

// AddStep appends ref to the routine's products. ErrNotFound when no
// routine with that id belongs to ownerEmail.
func (r *Repository) AddStep(ctx context.Context, id primitive.ObjectID, ownerEmail string, ref ProductRef) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_email": ownerEmail},
		bson.M{"$push": bson.M{"products": ref}},
	)
	if err != nil {
		return fmt.Errorf("push step to routine %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RemoveStep removes every product named productName from the routine.
func (r *Repository) RemoveStep(ctx context.Context, id primitive.ObjectID, ownerEmail, productName string) (RemovalOutcome, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_email": ownerEmail},
		bson.M{"$pull": bson.M{"products": bson.M{"name": productName}}},
	)
	if err != nil {
		return "", fmt.Errorf("pull step from routine %s: %w", id.Hex(), err)
	}

	switch {
	case result.MatchedCount == 0:
		return RoutineNotFound, nil
	case result.ModifiedCount == 0:
		return ProductNotInRoutine, nil
	default:
		return StepRemoved, nil
	}
}

// TopBrands counts embedded products per brand across all routines. Ties in
// count are ordered by brand name.
func (r *Repository) TopBrands(ctx context.Context, limit int) ([]BrandCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$products"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$products.brand"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top brands: %w", err)
	}
	defer cursor.Close(ctx)

	stats := []BrandCount{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode top brands: %w", err)
	}
	return stats, nil
}
