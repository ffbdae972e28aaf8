package store

import (
	"context"
	"fmt"
	"testing"

	"foodiehub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStorage wraps MemoryStorage and fails saves and deletes for the
// keys in failKeys. Tests flip keys on after setting up state.
type flakyStorage struct {
	*MemoryStorage
	failKeys map[string]bool
}

func newFlakyStorage() *flakyStorage {
	return &flakyStorage{
		MemoryStorage: NewMemoryStorage(),
		failKeys:      make(map[string]bool),
	}
}

func (f *flakyStorage) Save(ctx context.Context, key string, v interface{}) error {
	if f.failKeys[key] {
		return fmt.Errorf("%w: save %q", ErrStorageUnavailable, key)
	}
	return f.MemoryStorage.Save(ctx, key, v)
}

func (f *flakyStorage) Delete(ctx context.Context, key string) error {
	if f.failKeys[key] {
		return fmt.Errorf("%w: delete %q", ErrStorageUnavailable, key)
	}
	return f.MemoryStorage.Delete(ctx, key)
}

func TestMemoryStorageAbsentKey(t *testing.T) {
	s := NewMemoryStorage()

	var lines []models.CartLine
	found, err := s.Load(context.Background(), CartKey, &lines)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, lines)
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	in := []models.CartLine{
		{FoodItem: models.FoodItem{ID: 1, Name: "Masala Dosa", Price: 120, IsVeg: true}, Quantity: 2},
		{FoodItem: models.FoodItem{ID: 6, Name: "Chilli Chicken", Price: 260, IsSpicy: true}, Quantity: 1},
	}
	require.NoError(t, s.Save(ctx, CartKey, in))

	var out []models.CartLine
	found, err := s.Load(ctx, CartKey, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestMemoryStorageDelete(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, UserKey, models.User{ID: 1, Name: "Demo User"}))
	require.NoError(t, s.Delete(ctx, UserKey))

	var u models.User
	found, err := s.Load(ctx, UserKey, &u)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, UserKey))
}

func TestMemoryStorageCorruptDocument(t *testing.T) {
	s := NewMemoryStorage()
	s.docs[CartKey] = []byte("{not json")

	var lines []models.CartLine
	_, err := s.Load(context.Background(), CartKey, &lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
