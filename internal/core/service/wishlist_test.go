package service_test

import (
	"testing"

	"github.com/niksmo/techmarket/internal/core/domain"
	"github.com/niksmo/techmarket/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Load() []domain.WishlistEntry {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]domain.WishlistEntry)
	}
	return nil
}

func (m *MockWishlistRepository) Save(entries []domain.WishlistEntry) error {
	return m.Called(entries).Error(0)
}

func newTestWishlist(repo *MockWishlistRepository) *service.Wishlist {
	return service.NewWishlist(cartProducts(), cartIcons(), repo, nopNotifier{})
}

func anySaveWishlistRepo() *MockWishlistRepository {
	repo := new(MockWishlistRepository)
	repo.On("Load").Return(nil)
	repo.On("Save", mock.Anything).Return(nil)
	return repo
}

func TestWishlistToggle(t *testing.T) {
	t.Run("AddSnapshotsDisplayData", func(t *testing.T) {
		w := newTestWishlist(anySaveWishlistRepo())

		present, err := w.Toggle(1)
		require.NoError(t, err)
		assert.True(t, present)
		require.True(t, w.Contains(1))

		e := w.Entries()[0]
		assert.Equal(t, "Фотоаппарат", e.Name)
		assert.Equal(t, int64(800), e.Price, "snapshot of the effective price")
		assert.Equal(t, "⌚", e.CategoryIcon)
	})

	t.Run("ToggleIsItsOwnInverse", func(t *testing.T) {
		w := newTestWishlist(anySaveWishlistRepo())

		_, err := w.Toggle(1)
		require.NoError(t, err)
		present, err := w.Toggle(1)
		require.NoError(t, err)

		assert.False(t, present)
		assert.False(t, w.Contains(1))
		assert.Empty(t, w.Entries())
	})

	t.Run("OutOfStockProductsAreAllowed", func(t *testing.T) {
		// wishlist has no stock rule: only the cart does
		w := newTestWishlist(anySaveWishlistRepo())

		present, err := w.Toggle(3)
		require.NoError(t, err)
		assert.True(t, present)
	})

	t.Run("UnknownProductIsRejected", func(t *testing.T) {
		repo := new(MockWishlistRepository)
		repo.On("Load").Return(nil)
		w := newTestWishlist(repo)

		_, err := w.Toggle(99)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("EveryMutationWritesThrough", func(t *testing.T) {
		repo := anySaveWishlistRepo()
		w := newTestWishlist(repo)

		_, _ = w.Toggle(1)
		_, _ = w.Toggle(2)
		w.Remove(1)

		repo.AssertNumberOfCalls(t, "Save", 3)
	})
}

func TestWishlistRemove(t *testing.T) {
	w := newTestWishlist(anySaveWishlistRepo())
	_, _ = w.Toggle(1)
	_, _ = w.Toggle(2)

	w.Remove(1)
	assert.False(t, w.Contains(1))
	assert.True(t, w.Contains(2))

	w.Remove(42) // unknown: no-op
	assert.Len(t, w.Entries(), 1)
}

func TestWishlistLoadsPersistedEntries(t *testing.T) {
	stored := []domain.WishlistEntry{
		{ProductID: 2, Name: "Колонка", Price: 500, CategoryIcon: "⌚"},
	}
	repo := new(MockWishlistRepository)
	repo.On("Load").Return(stored)
	repo.On("Save", mock.Anything).Return(nil)

	w := newTestWishlist(repo)
	assert.True(t, w.Contains(2))

	present, err := w.Toggle(2)
	require.NoError(t, err)
	assert.False(t, present, "toggling a restored entry removes it")
}
