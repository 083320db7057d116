package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	store, err := NewKVStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewKVStore_CreatesDatabase(t *testing.T) {
	store := newTestStore(t)
	assert.FileExists(t, store.Path())
}

func TestKVStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	favorites := []domain.Favorite{
		{Recipe: domain.Recipe{ID: 1, Title: "Pasta"}, AddedAt: 1700000000000},
	}
	require.True(t, store.Save("favorites", favorites))

	var loaded []domain.Favorite
	require.True(t, store.Load("favorites", &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, "Pasta", loaded[0].Title)
	assert.Equal(t, int64(1700000000000), loaded[0].AddedAt)
}

func TestKVStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.Save("key", "old"))
	require.True(t, store.Save("key", "new"))

	var loaded string
	require.True(t, store.Load("key", &loaded))
	assert.Equal(t, "new", loaded)
}

func TestKVStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	var dest []string
	assert.False(t, store.Load("missing", &dest))
}

func TestKVStore_EmptyRecordIsNotAbsent(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.Save("shopping_list", []domain.ShoppingItem{}))

	var dest []domain.ShoppingItem
	assert.True(t, store.Load("shopping_list", &dest))
	assert.Empty(t, dest)
}

func TestKVStore_SaveUnserialisable(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Save("bad", make(chan int)))

	var dest any
	assert.False(t, store.Load("bad", &dest))
}

func TestKVStore_Remove(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.Save("key", 1))

	assert.True(t, store.Remove("key"))

	var dest int
	assert.False(t, store.Load("key", &dest))

	// Idempotent on absent keys.
	assert.True(t, store.Remove("key"))
}

func TestKVStore_ClearAll(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.Save("a", 1))
	require.True(t, store.Save("b", 2))
	require.True(t, store.Save("c", 3))

	store.ClearAll("a", "b")

	var dest int
	assert.False(t, store.Load("a", &dest))
	assert.False(t, store.Load("b", &dest))
	assert.True(t, store.Load("c", &dest))
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewKVStore(dir)
	require.NoError(t, err)
	require.True(t, store.Save("recent_searches", []string{"pasta"}))
	require.NoError(t, store.Close())

	reopened, err := NewKVStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	var searches []string
	require.True(t, reopened.Load("recent_searches", &searches))
	assert.Equal(t, []string{"pasta"}, searches)
}
