package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
)

func TestRecentSearchesService_List_Empty(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())
	assert.Empty(t, service.List())
}

func TestRecentSearchesService_Add_MostRecentFirst(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())

	service.Add("pasta")
	service.Add("soup")

	assert.Equal(t, []string{"soup", "pasta"}, service.List())
}

func TestRecentSearchesService_Add_ExistingMovesToFront(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())

	service.Add("pasta")
	service.Add("soup")
	service.Add("pasta")

	assert.Equal(t, []string{"pasta", "soup"}, service.List())
}

func TestRecentSearchesService_Add_IgnoresBlank(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())

	service.Add("")
	service.Add("   ")
	service.Add("\t\n")

	assert.Empty(t, service.List())
}

func TestRecentSearchesService_Add_TrimsWhitespace(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())

	service.Add("  pasta  ")
	service.Add("pasta")

	assert.Equal(t, []string{"pasta"}, service.List())
}

func TestRecentSearchesService_CapAtTen(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())

	for i := 1; i <= 15; i++ {
		service.Add(fmt.Sprintf("query-%d", i))
	}

	searches := service.List()
	require.Len(t, searches, 10)
	assert.Equal(t, "query-15", searches[0])
	assert.Equal(t, "query-6", searches[9])
}

func TestRecentSearchesService_Clear(t *testing.T) {
	service := NewRecentSearchesService(memory.NewKVStore())
	service.Add("pasta")

	service.Clear()

	assert.Empty(t, service.List())
}
