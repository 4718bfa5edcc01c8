package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/repository"
)

func conversion(id string) *entities.Conversion {
	return entities.NewConversion(id, entities.DirectionEncode, entities.NewCoordinate(1, 2), entities.WordAddress{})
}

func ids(cs []*entities.Conversion) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestConversionRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository(5)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, conversion(id)))
	}

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))

	got, err = repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids(got))
}

func TestConversionRepository_OverwritesOldest(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository(3)

	for i := 1; i <= 7; i++ {
		require.NoError(t, repo.Save(ctx, conversion(fmt.Sprint(i))))
	}

	assert.Equal(t, 3, repo.Len())
	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "6", "5"}, ids(got))
}

func TestConversionRepository_Limits(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository(0)

	got, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.Recent(ctx, 0)
	assert.ErrorIs(t, err, repository.ErrInvalidLimit)

	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}

func TestConversionRepository_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository(50)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(ctx, conversion(fmt.Sprint(i)))
			_, _ = repo.Recent(ctx, 5)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
