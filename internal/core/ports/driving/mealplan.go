package driving

import "github.com/plateful-labs/plateful-cli/internal/core/domain"

// MealPlanService manages the weekly meal plan.
type MealPlanService interface {
	// Get returns the stored plan, or a fully-populated empty plan when
	// none is stored. The empty default is never persisted by Get.
	Get() domain.MealPlan

	// AddMeal places a recipe snapshot in a slot, overwriting any current
	// meal, and persists the plan. Returns false without mutation if the
	// day or meal type is not recognised.
	AddMeal(day domain.Weekday, meal domain.MealType, recipe domain.Recipe) bool

	// RemoveMeal empties a slot and persists the plan. Returns false if
	// the day or meal type is not recognised.
	RemoveMeal(day domain.Weekday, meal domain.MealType) bool

	// Clear empties every slot.
	Clear()

	// AllMeals enumerates occupied slots in plan order (monday..sunday ×
	// breakfast, lunch, dinner).
	AllMeals() []domain.PlannedMeal
}
