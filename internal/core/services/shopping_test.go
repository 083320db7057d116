package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

func newShoppingFixture(t *testing.T) (*ShoppingService, *MealPlanService) {
	t.Helper()
	store := memory.NewKVStore()
	plan := NewMealPlanService(store)
	return NewShoppingService(store, plan), plan
}

func TestShoppingService_List_Empty(t *testing.T) {
	service, _ := newShoppingFixture(t)
	assert.Empty(t, service.List())
}

func TestShoppingService_Add(t *testing.T) {
	service, _ := newShoppingFixture(t)
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ok := service.Add("Tomato", domain.CategoryProduce)

	require.True(t, ok)
	items := service.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Tomato", items[0].Name)
	assert.Equal(t, domain.CategoryProduce, items[0].Category)
	assert.False(t, items[0].Checked)
	assert.Equal(t, int64(1700000000000), items[0].AddedAt)
	assert.NotEmpty(t, items[0].ID)
}

func TestShoppingService_Add_CaseInsensitiveDuplicate(t *testing.T) {
	service, _ := newShoppingFixture(t)
	require.True(t, service.Add("Tomato", domain.CategoryProduce))

	ok := service.Add("tomato", domain.CategoryPantry)

	assert.False(t, ok)
	items := service.List()
	require.Len(t, items, 1)
	// Existing entry is untouched by the rejected insert.
	assert.Equal(t, "Tomato", items[0].Name)
	assert.Equal(t, domain.CategoryProduce, items[0].Category)
}

func TestShoppingService_Add_InvalidCategoryDefaultsToOther(t *testing.T) {
	service, _ := newShoppingFixture(t)

	require.True(t, service.Add("widget", domain.Category("")))
	require.True(t, service.Add("gadget", domain.Category("frozen")))

	items := service.List()
	assert.Equal(t, domain.CategoryOther, items[0].Category)
	assert.Equal(t, domain.CategoryOther, items[1].Category)
}

func TestShoppingService_IDsAreUniqueAndOrdered(t *testing.T) {
	service, _ := newShoppingFixture(t)
	// Freeze the clock so uniqueness within one millisecond is exercised.
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	for i := 0; i < 20; i++ {
		require.True(t, service.Add(fmt.Sprintf("item-%d", i), domain.CategoryOther))
	}

	seen := make(map[string]bool)
	for _, item := range service.List() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestShoppingService_Remove(t *testing.T) {
	service, _ := newShoppingFixture(t)
	require.True(t, service.Add("milk", domain.CategoryDairy))
	id := service.List()[0].ID

	service.Remove(id)
	assert.Empty(t, service.List())

	// Absent id is a no-op.
	service.Remove(id)
	assert.Empty(t, service.List())
}

func TestShoppingService_Toggle(t *testing.T) {
	service, _ := newShoppingFixture(t)
	require.True(t, service.Add("milk", domain.CategoryDairy))
	id := service.List()[0].ID

	require.True(t, service.Toggle(id))
	assert.True(t, service.List()[0].Checked)

	require.True(t, service.Toggle(id))
	assert.False(t, service.List()[0].Checked)
}

func TestShoppingService_Toggle_UnknownID(t *testing.T) {
	service, _ := newShoppingFixture(t)
	assert.False(t, service.Toggle("nope"))
}

func TestShoppingService_Clear(t *testing.T) {
	service, _ := newShoppingFixture(t)
	require.True(t, service.Add("milk", domain.CategoryDairy))

	service.Clear()

	assert.Empty(t, service.List())
}

func TestShoppingService_GenerateFromMealPlan(t *testing.T) {
	service, plan := newShoppingFixture(t)
	require.True(t, plan.AddMeal(domain.Monday, domain.Lunch, domain.Recipe{
		ID:          1,
		Ingredients: []domain.Ingredient{{Name: "Tomato", Amount: 2, Unit: "whole"}},
	}))
	require.True(t, plan.AddMeal(domain.Friday, domain.Dinner, domain.Recipe{
		ID:          2,
		Ingredients: []domain.Ingredient{{Name: "Tomato", Amount: 3, Unit: "whole"}},
	}))

	entries := service.GenerateFromMealPlan()

	require.Len(t, entries, 1)
	assert.Equal(t, "Tomato", entries[0].Name)
	assert.Equal(t, 5.0, entries[0].Amount)

	// Generation is a projection only; the persisted list is untouched.
	assert.Empty(t, service.List())
}

func TestShoppingService_Import(t *testing.T) {
	service, _ := newShoppingFixture(t)
	require.True(t, service.Add("Tomato", domain.CategoryProduce))

	added := service.Import([]domain.ShoppingListEntry{
		{Name: "tomato", Category: domain.CategoryProduce}, // duplicate, skipped
		{Name: "basil", Category: domain.CategoryProduce},
		{Name: "olive oil", Category: domain.CategoryPantry},
	})

	assert.Equal(t, 2, added)
	assert.Len(t, service.List(), 3)
}
