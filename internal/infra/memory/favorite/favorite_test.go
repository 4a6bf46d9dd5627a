package infra_memory_favorite

import (
	"context"
	"testing"

	"github.com/humanbelnik/moviefav/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryScopesByOwner(t *testing.T) {
	ctx := context.Background()
	r := New()

	aID, err := r.Store(ctx, model.Favorite{ImdbID: "tt1", Title: "A", PosterURL: "a.jpg", OwnerEmail: "a@b.com"})
	require.NoError(t, err)
	_, err = r.Store(ctx, model.Favorite{ImdbID: "tt2", Title: "B", PosterURL: "b.jpg", OwnerEmail: "b@b.com"})
	require.NoError(t, err)
	a2ID, err := r.Store(ctx, model.Favorite{ImdbID: "tt3", Title: "C", PosterURL: "c.jpg", OwnerEmail: "a@b.com"})
	require.NoError(t, err)

	ff, err := r.LoadByOwner(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, ff, 2)
	assert.Equal(t, aID, ff[0].ID)
	assert.Equal(t, a2ID, ff[1].ID)

	n, err := r.DeleteByOwner(ctx, "b@b.com", aID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = r.DeleteByOwner(ctx, "a@b.com", aID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = r.DeleteByOwner(ctx, "a@b.com", aID)
	require.NoError(t, err)
	assert.Zero(t, n)

	ff, err = r.LoadByOwner(ctx, "nobody@b.com")
	require.NoError(t, err)
	assert.NotNil(t, ff)
	assert.Empty(t, ff)
}
