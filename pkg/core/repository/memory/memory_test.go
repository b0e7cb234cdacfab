package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blogapp/pkg/common/errors"
	"blogapp/pkg/core/model"
	"blogapp/pkg/core/repository/memory"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	r := memory.NewUserRepository(nil)

	first, err := r.Add(model.User{Username: "Ana", Password: "Abc12345!"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := r.Add(model.User{Username: "Bram", Password: "Abc12345!"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestAddOnSeededCollectionContinuesFromMax(t *testing.T) {
	repos := memory.NewRepositories(model.DefaultSeed())

	created, err := repos.Posts.Add(model.Post{Title: "T", Body: "B", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestAddAfterDeletingMaxReusesID(t *testing.T) {
	r := memory.NewCommentRepository([]model.Comment{
		{ID: 1, Body: "a", UserID: 1, PostID: 1},
		{ID: 5, Body: "b", UserID: 1, PostID: 1},
	})

	require.NoError(t, r.Delete(5))

	created, err := r.Add(model.Comment{Body: "c", UserID: 1, PostID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestAddRoundTrip(t *testing.T) {
	r := memory.NewUserRepository(nil)

	created, err := r.Add(model.User{Username: "Ana", Password: "Abc12345!"})
	require.NoError(t, err)

	got, err := r.GetSingle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Ana", got.Username)
}

func TestUpdateReplacesRecord(t *testing.T) {
	r := memory.NewUserRepository([]model.User{{ID: 1, Username: "Ana", Password: "old"}})

	updated, err := r.Update(model.User{ID: 1, Username: "Ana", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Password)

	// Idempotent: running the same update again yields the same state.
	_, err = r.Update(model.User{ID: 1, Username: "Ana", Password: "new"})
	require.NoError(t, err)

	got, err := r.GetSingle(1)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Password)

	all, err := r.GetMany()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	r := memory.NewUserRepository(nil)

	_, err := r.Update(model.User{ID: 42, Username: "ghost"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	repos := memory.NewRepositories(model.DefaultSeed())

	require.NoError(t, repos.Users.Delete(2))

	_, err := repos.Users.GetSingle(2)
	assert.True(t, apperrors.IsNotFound(err))

	all, err := repos.Users.GetMany()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	r := memory.NewPostRepository(nil)

	err := r.Delete(99)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetManyReturnsSnapshot(t *testing.T) {
	r := memory.NewUserRepository([]model.User{{ID: 1, Username: "Ana", Password: "x"}})

	all, err := r.GetMany()
	require.NoError(t, err)
	all[0].Username = "mutated"

	got, err := r.GetSingle(1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Username)
}

func TestSeedSliceIsCopied(t *testing.T) {
	seed := []model.User{{ID: 1, Username: "Ana", Password: "x"}}
	r := memory.NewUserRepository(seed)

	seed[0].Username = "mutated"

	got, err := r.GetSingle(1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Username)
}

func TestDefaultSeedRows(t *testing.T) {
	repos := memory.NewRepositories(model.DefaultSeed())

	users, err := repos.Users.GetMany()
	require.NoError(t, err)
	posts, err := repos.Posts.GetMany()
	require.NoError(t, err)
	comments, err := repos.Comments.GetMany()
	require.NoError(t, err)

	assert.Len(t, users, 3)
	assert.Len(t, posts, 3)
	assert.Len(t, comments, 3)
}
