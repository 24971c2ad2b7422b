package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &User{Email: "u@example.com", Password: "hash"}
		require.NoError(mt, repo.Create(context.Background(), user))
		require.False(mt, user.ID.IsZero())
		require.False(mt, user.CreatedAt.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_unique",
		}))

		err := repo.Create(context.Background(), &User{Email: "u@example.com", Password: "hash"})
		require.ErrorIs(mt, err, apperrors.ErrDuplicate)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "skincare.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "u@example.com"},
			{Key: "password", Value: "hash"},
		}))

		user, err := repo.FindByEmail(context.Background(), "u@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, user)
		require.Equal(mt, id, user.ID)
		require.Equal(mt, "hash", user.Password)
	})

	mt.Run("find by email missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "skincare.users", mtest.FirstBatch))

		user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		require.NoError(mt, err)
		require.Nil(mt, user)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("ensure indexes failure", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    86,
			Name:    "IndexKeySpecsConflict",
			Message: "index already exists with different options",
		}))
		require.Error(mt, repo.EnsureIndexes(context.Background()))
	})
}
