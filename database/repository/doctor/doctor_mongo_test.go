package doctorRepo

import (
	"context"
	"testing"

	"turfadmin/database/repository"
	"turfadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "test.doctors"

func excludesPassword(mt *mtest.T, cmd bson.Raw, field string) {
	projection, err := cmd.LookupErr(field)
	require.NoError(mt, err, "missing %s", field)
	password, err := projection.Document().LookupErr("password")
	require.NoError(mt, err)
	assert.Equal(mt, int64(0), password.AsInt64())
}

func TestMongoDoctorRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("GetAllSafe hides passwords", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Green Field"}, {Key: "email", Value: "a@example.com"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "North Pitch"}, {Key: "email", Value: "b@example.com"}},
		))

		got, err := repo.GetAllSafe(ctx)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "Green Field", got[0].Name)
		assert.Empty(mt, got[0].Password)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		excludesPassword(mt, evt.Command, "projection")
		_, err = evt.Command.LookupErr("sort")
		assert.Error(mt, err)
	})

	mt.Run("GetByID hides password", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Green Field"}}))

		got, err := repo.GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		excludesPassword(mt, evt.Command, "projection")
	})

	mt.Run("GetByID missing", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("GetByID malformed id", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)

		_, err := repo.GetByID(ctx, "12345")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("UpdateWithDocument empty patch reads instead", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Green Field"}}))

		got, err := repo.UpdateWithDocument(ctx, id.Hex(), bson.M{})
		require.NoError(mt, err)
		assert.Equal(mt, "Green Field", got.Name)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
	})

	mt.Run("UpdateWithDocument returns the new document", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id}, {Key: "name", Value: "North Pitch"},
		}}))

		got, err := repo.UpdateWithDocument(ctx, id.Hex(), bson.M{"name": "North Pitch"})
		require.NoError(mt, err)
		assert.Equal(mt, "North Pitch", got.Name)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		excludesPassword(mt, evt.Command, "fields")
		assert.True(mt, evt.Command.Lookup("new").Boolean())
	})

	mt.Run("UpdateWithDocument missing", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateWithDocument(ctx, primitive.NewObjectID().Hex(), bson.M{"name": "North Pitch"})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("Create keeps a preset id", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id := primitive.NewObjectID()
		item := &models.Doctor{ID: id, Name: "Green Field"}

		require.NoError(mt, repo.Create(ctx, item))
		assert.Equal(mt, id, item.ID)
	})

	mt.Run("Delete unmatched", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("Delete matched", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})

	mt.Run("Count", func(mt *mtest.T) {
		repo := NewMongoDoctorRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := repo.Count(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}
