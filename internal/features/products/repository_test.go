package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/xyz-asif/skincare/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

const ns = "skincare.products"

func productDoc(id primitive.ObjectID, name, brand string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "brand", Value: brand},
		{Key: "category", Value: "Serum"},
		{Key: "price", Value: 6.5},
	}
}

func TestRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("whole catalog in insertion order", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			productDoc(first, "Toner", "Cosrx"),
			productDoc(second, "Serum", "The Ordinary"),
		))

		items, total, err := repo.List(context.Background(), nil)
		require.NoError(mt, err)
		require.Equal(mt, int64(2), total)
		require.Len(mt, items, 2)
		require.Equal(mt, first, items[0].ID)
		require.Equal(mt, "The Ordinary", items[1].Brand)

		started := mt.GetStartedEvent()
		require.Equal(mt, "find", started.CommandName)
		require.Equal(mt, int32(1), started.Command.Lookup("sort", "_id").Int32())
	})

	mt.Run("empty catalog is an empty slice", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		items, total, err := repo.List(context.Background(), nil)
		require.NoError(mt, err)
		require.NotNil(mt, items)
		require.Empty(mt, items)
		require.Zero(mt, total)
	})

	mt.Run("paginated", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(7)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, productDoc(primitive.NewObjectID(), "Toner", "Cosrx")),
		)

		items, total, err := repo.List(context.Background(), &pagination.Request{Page: 2, Limit: 3})
		require.NoError(mt, err)
		require.Equal(mt, int64(7), total)
		require.Len(mt, items, 1)
	})
}

func TestRepositoryGetCreateDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, productDoc(id, "Toner", "Cosrx")))

		product, err := repo.Get(context.Background(), id)
		require.NoError(mt, err)
		require.Equal(mt, &Product{ID: id, Name: "Toner", Brand: "Cosrx", Category: "Serum", Price: 6.5}, product)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Get(context.Background(), primitive.NewObjectID())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &Product{Name: "Toner", Brand: "Cosrx", Category: "Toner", Price: 12}
		require.NoError(mt, repo.Create(context.Background(), product))
		require.False(mt, product.ID.IsZero())
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := repo.Delete(context.Background(), primitive.NewObjectID())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}

func TestRepositoryUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("modified", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		outcome, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{"price": 7.0})
		require.NoError(mt, err)
		require.Equal(mt, Updated, outcome)
	})

	mt.Run("same values", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		outcome, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{"price": 6.5})
		require.NoError(mt, err)
		require.Equal(mt, NoChanges, outcome)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		_, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{"price": 6.5})
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("empty patch on existing product", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		outcome, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{})
		require.NoError(mt, err)
		require.Equal(mt, NoChanges, outcome)

		started := mt.GetStartedEvent()
		require.Equal(mt, "aggregate", started.CommandName)
	})

	mt.Run("empty patch on missing product", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Update(context.Background(), primitive.NewObjectID(), bson.M{})
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})
}
