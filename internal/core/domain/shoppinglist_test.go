package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShoppingList_EmptyPlan(t *testing.T) {
	assert.Empty(t, BuildShoppingList(NewMealPlan()))
}

func TestBuildShoppingList_SingleRecipe(t *testing.T) {
	plan := NewMealPlan()
	require.True(t, plan.SetMeal(Monday, Dinner, &Recipe{
		ID:    1,
		Title: "Pasta",
		Ingredients: []Ingredient{
			{Name: "spaghetti", Aisle: "Pasta and Rice", Amount: 200, Unit: "g"},
			{Name: "Tomato", Amount: 3, Unit: ""},
		},
	}))

	list := BuildShoppingList(plan)

	require.Len(t, list, 2)
	assert.Equal(t, "spaghetti", list[0].Name)
	assert.Equal(t, CategoryGrains, list[0].Category)
	assert.Equal(t, 200.0, list[0].Amount)
	assert.Equal(t, "g", list[0].Unit)
	assert.False(t, list[0].Checked)
	assert.Equal(t, "Tomato", list[1].Name)
	assert.Equal(t, CategoryProduce, list[1].Category)
}

func TestBuildShoppingList_SumsExactNameMatches(t *testing.T) {
	plan := NewMealPlan()
	require.True(t, plan.SetMeal(Monday, Lunch, &Recipe{
		ID:          1,
		Ingredients: []Ingredient{{Name: "Tomato", Amount: 2, Unit: "whole"}},
	}))
	require.True(t, plan.SetMeal(Wednesday, Dinner, &Recipe{
		ID:          2,
		Ingredients: []Ingredient{{Name: "Tomato", Amount: 3, Unit: "whole"}},
	}))

	list := BuildShoppingList(plan)

	require.Len(t, list, 1)
	assert.Equal(t, "Tomato", list[0].Name)
	assert.Equal(t, 5.0, list[0].Amount)
}

// Aggregation keys on the exact name string, so differently-cased names
// stay separate entries. This intentionally differs from the persisted
// shopping list, which dedupes case-insensitively on insert.
func TestBuildShoppingList_CaseSensitiveKey(t *testing.T) {
	plan := NewMealPlan()
	require.True(t, plan.SetMeal(Monday, Lunch, &Recipe{
		ID:          1,
		Ingredients: []Ingredient{{Name: "Tomato", Amount: 2}},
	}))
	require.True(t, plan.SetMeal(Tuesday, Lunch, &Recipe{
		ID:          2,
		Ingredients: []Ingredient{{Name: "tomato", Amount: 3}},
	}))

	list := BuildShoppingList(plan)

	require.Len(t, list, 2)
}

// Known limitation: amounts are summed numerically even when the units
// disagree, and the first occurrence's unit sticks.
func TestBuildShoppingList_MixedUnits(t *testing.T) {
	plan := NewMealPlan()
	require.True(t, plan.SetMeal(Monday, Lunch, &Recipe{
		ID:          1,
		Ingredients: []Ingredient{{Name: "flour", Amount: 2, Unit: "cups"}},
	}))
	require.True(t, plan.SetMeal(Tuesday, Dinner, &Recipe{
		ID:          2,
		Ingredients: []Ingredient{{Name: "flour", Amount: 250, Unit: "g"}},
	}))

	list := BuildShoppingList(plan)

	require.Len(t, list, 1)
	assert.Equal(t, 252.0, list[0].Amount)
	assert.Equal(t, "cups", list[0].Unit)
}

func TestBuildShoppingList_FirstOccurrenceFixesCategory(t *testing.T) {
	plan := NewMealPlan()
	// Aisle hint present on the first occurrence only.
	require.True(t, plan.SetMeal(Monday, Lunch, &Recipe{
		ID:          1,
		Ingredients: []Ingredient{{Name: "arborio", Aisle: "Pasta and Rice", Amount: 1}},
	}))
	require.True(t, plan.SetMeal(Friday, Dinner, &Recipe{
		ID:          2,
		Ingredients: []Ingredient{{Name: "arborio", Amount: 1}},
	}))

	list := BuildShoppingList(plan)

	require.Len(t, list, 1)
	assert.Equal(t, CategoryGrains, list[0].Category)
	assert.Equal(t, 2.0, list[0].Amount)
}
