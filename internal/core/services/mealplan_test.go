package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

func TestMealPlanService_Get_FreshStoreReturnsFullEmptyPlan(t *testing.T) {
	store := memory.NewKVStore()
	service := NewMealPlanService(store)

	plan := service.Get()

	require.Len(t, plan, 7)
	for _, day := range domain.AllWeekdays() {
		require.NotNil(t, plan[day], day.String())
		for _, slot := range domain.AllMealTypes() {
			assert.Nil(t, plan[day].Meal(slot))
		}
	}

	// Absence means "default": Get must not persist the default plan.
	assert.Equal(t, 0, store.Len())
}

func TestMealPlanService_AddMeal(t *testing.T) {
	service := NewMealPlanService(memory.NewKVStore())
	recipe := domain.Recipe{ID: 9, Title: "Lentil Soup"}

	ok := service.AddMeal(domain.Monday, domain.Lunch, recipe)

	require.True(t, ok)
	plan := service.Get()
	require.NotNil(t, plan[domain.Monday].Lunch)
	assert.Equal(t, 9, plan[domain.Monday].Lunch.ID)

	for _, day := range domain.AllWeekdays() {
		for _, slot := range domain.AllMealTypes() {
			if day == domain.Monday && slot == domain.Lunch {
				continue
			}
			assert.Nil(t, plan[day].Meal(slot))
		}
	}
}

func TestMealPlanService_AddMeal_InvalidDay(t *testing.T) {
	store := memory.NewKVStore()
	service := NewMealPlanService(store)

	ok := service.AddMeal(domain.Weekday("funday"), domain.Lunch, domain.Recipe{ID: 1})

	assert.False(t, ok)
	// Nothing was persisted.
	assert.Equal(t, 0, store.Len())
}

func TestMealPlanService_AddMeal_OverwritesWithoutMerge(t *testing.T) {
	service := NewMealPlanService(memory.NewKVStore())
	require.True(t, service.AddMeal(domain.Friday, domain.Dinner, domain.Recipe{ID: 1, Title: "Old"}))

	require.True(t, service.AddMeal(domain.Friday, domain.Dinner, domain.Recipe{ID: 2, Title: "New"}))

	plan := service.Get()
	assert.Equal(t, "New", plan[domain.Friday].Dinner.Title)
}

func TestMealPlanService_RemoveMeal(t *testing.T) {
	service := NewMealPlanService(memory.NewKVStore())
	require.True(t, service.AddMeal(domain.Tuesday, domain.Breakfast, domain.Recipe{ID: 1}))

	assert.True(t, service.RemoveMeal(domain.Tuesday, domain.Breakfast))
	assert.Nil(t, service.Get()[domain.Tuesday].Breakfast)

	assert.False(t, service.RemoveMeal(domain.Weekday("someday"), domain.Breakfast))
}

func TestMealPlanService_Clear(t *testing.T) {
	service := NewMealPlanService(memory.NewKVStore())
	require.True(t, service.AddMeal(domain.Monday, domain.Breakfast, domain.Recipe{ID: 1}))
	require.True(t, service.AddMeal(domain.Sunday, domain.Dinner, domain.Recipe{ID: 2}))

	service.Clear()

	assert.Empty(t, service.AllMeals())
	// The key set stays complete after clearing.
	require.Len(t, service.Get(), 7)
}

func TestMealPlanService_AllMeals_PlanOrder(t *testing.T) {
	service := NewMealPlanService(memory.NewKVStore())
	// Insert in reverse plan order.
	require.True(t, service.AddMeal(domain.Sunday, domain.Dinner, domain.Recipe{ID: 2}))
	require.True(t, service.AddMeal(domain.Monday, domain.Breakfast, domain.Recipe{ID: 1}))

	meals := service.AllMeals()

	require.Len(t, meals, 2)
	assert.Equal(t, domain.Monday, meals[0].Day)
	assert.Equal(t, domain.Breakfast, meals[0].MealType)
	assert.Equal(t, domain.Sunday, meals[1].Day)
	assert.Equal(t, domain.Dinner, meals[1].MealType)
}

func TestMealPlanService_Get_NormalizesPartialStoredPlan(t *testing.T) {
	store := memory.NewKVStore()
	// A plan stored with a missing day (e.g. edited out of band).
	require.True(t, store.Save("meal_plan", map[string]any{
		"monday": map[string]any{"breakfast": map[string]any{"id": 5, "title": "Eggs"}},
	}))
	service := NewMealPlanService(store)

	plan := service.Get()

	require.Len(t, plan, 7)
	require.NotNil(t, plan[domain.Monday].Breakfast)
	assert.Equal(t, 5, plan[domain.Monday].Breakfast.ID)
	assert.NotNil(t, plan[domain.Sunday])
}
