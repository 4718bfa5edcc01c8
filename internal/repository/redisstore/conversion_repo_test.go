package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/repository"
)

func newTestRepo(t *testing.T, capacity int) (*ConversionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewWithClient(client, DefaultKey, capacity)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, mr
}

func conversion(id string) *entities.Conversion {
	return entities.NewConversion(id, entities.DirectionEncode,
		entities.NewCoordinate(51.5007, -0.1246),
		entities.WordAddress{Word1: "apple", Word2: "banana", Word3: "cherry"})
}

func TestConversionRepository_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t, 10)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, conversion(id)))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, entities.DirectionEncode, got[0].Direction)
	assert.Equal(t, "apple.banana.cherry", got[0].Address.String())
	assert.InDelta(t, 51.5007, got[0].Coordinate.Latitude, 1e-12)
}

func TestConversionRepository_TrimsToCapacity(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t, 3)

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, repo.Save(ctx, conversion(id)))
	}

	items, err := mr.List(DefaultKey)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"5", "4", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestConversionRepository_EmptyAndInvalidLimit(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t, 3)

	got, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.Recent(ctx, 0)
	assert.ErrorIs(t, err, repository.ErrInvalidLimit)
}

func TestConversionRepository_PingFailsWhenServerIsGone(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	repo := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), DefaultKey, 3)
	defer repo.Close()

	require.NoError(t, repo.Ping(ctx))
	mr.Close()
	assert.Error(t, repo.Ping(ctx))
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := New(context.Background(), "not a url", 10)
	assert.Error(t, err)
}

func TestNew_ConnectsToServer(t *testing.T) {
	mr := miniredis.RunT(t)
	repo, err := New(context.Background(), "redis://"+mr.Addr()+"/0", 10)
	require.NoError(t, err)
	defer repo.Close()
	assert.NoError(t, repo.Ping(context.Background()))
}
