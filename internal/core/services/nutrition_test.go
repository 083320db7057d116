package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

func newNutritionFixture(t *testing.T) (*NutritionService, *MealPlanService, *PreferencesService) {
	t.Helper()
	store := memory.NewKVStore()
	plan := NewMealPlanService(store)
	prefs := NewPreferencesService(store)
	return NewNutritionService(plan, prefs), plan, prefs
}

func caloricRecipe(id int, calories float64) domain.Recipe {
	return domain.Recipe{
		ID: id,
		Nutrition: &domain.Nutrition{Nutrients: []domain.Nutrient{
			{Name: domain.NutrientCalories, Amount: calories, Unit: "kcal"},
		}},
	}
}

func TestNutritionService_Daily(t *testing.T) {
	service, plan, _ := newNutritionFixture(t)
	require.True(t, plan.AddMeal(domain.Monday, domain.Breakfast, caloricRecipe(1, 400)))
	require.True(t, plan.AddMeal(domain.Monday, domain.Dinner, caloricRecipe(2, 600)))
	require.True(t, plan.AddMeal(domain.Tuesday, domain.Lunch, caloricRecipe(3, 800)))

	total, ok := service.Daily(domain.Monday)

	require.True(t, ok)
	assert.Equal(t, 1000, total.Calories)
}

func TestNutritionService_Daily_InvalidDay(t *testing.T) {
	service, _, _ := newNutritionFixture(t)

	_, ok := service.Daily(domain.Weekday("funday"))

	assert.False(t, ok)
}

func TestNutritionService_WeeklyAverage(t *testing.T) {
	service, plan, _ := newNutritionFixture(t)
	// 1400 kcal on Monday only; the divisor stays 7.
	require.True(t, plan.AddMeal(domain.Monday, domain.Breakfast, caloricRecipe(1, 400)))
	require.True(t, plan.AddMeal(domain.Monday, domain.Lunch, caloricRecipe(2, 500)))
	require.True(t, plan.AddMeal(domain.Monday, domain.Dinner, caloricRecipe(3, 500)))

	avg := service.WeeklyAverage()

	assert.Equal(t, 200, avg.Calories)
}

func TestNutritionService_MonthlyAverageEqualsWeekly(t *testing.T) {
	service, plan, _ := newNutritionFixture(t)
	require.True(t, plan.AddMeal(domain.Wednesday, domain.Lunch, caloricRecipe(1, 700)))

	assert.Equal(t, service.WeeklyAverage(), service.MonthlyAverage())
}

func TestNutritionService_DailyProgress(t *testing.T) {
	service, plan, prefs := newNutritionFixture(t)
	prefs.Save(domain.UserPreferences{CalorieGoal: 2000, ProteinGoal: 150, CarbsGoal: 250, FatGoal: 65})
	require.True(t, plan.AddMeal(domain.Monday, domain.Lunch, caloricRecipe(1, 1000)))

	progress, ok := service.DailyProgress(domain.Monday)

	require.True(t, ok)
	assert.Equal(t, 50, progress["calories"].Percent)
	assert.Equal(t, 1000, progress["calories"].Consumed)
	assert.Equal(t, 0, progress["protein"].Consumed)
}

func TestNutritionService_DailyProgress_InvalidDay(t *testing.T) {
	service, _, _ := newNutritionFixture(t)

	_, ok := service.DailyProgress(domain.Weekday(""))

	assert.False(t, ok)
}
