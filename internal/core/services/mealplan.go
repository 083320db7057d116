package services

import (
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure MealPlanService implements the interface.
var _ driving.MealPlanService = (*MealPlanService)(nil)

// MealPlanService manages the weekly meal plan.
type MealPlanService struct {
	store driven.KeyValueStore
}

// NewMealPlanService creates a new meal plan service.
func NewMealPlanService(store driven.KeyValueStore) *MealPlanService {
	return &MealPlanService{store: store}
}

// Get returns the stored plan, or a fully-populated empty plan when none
// is stored. Absence means "default": the empty plan is returned, not
// written back.
func (s *MealPlanService) Get() domain.MealPlan {
	var plan domain.MealPlan
	if !s.store.Load(keyMealPlan, &plan) {
		return domain.NewMealPlan()
	}
	plan.Normalize()
	return plan
}

// AddMeal places a recipe snapshot in a slot, overwriting any current
// meal, and persists the plan. Returns false without mutation if the day
// or meal type is not recognised.
func (s *MealPlanService) AddMeal(day domain.Weekday, meal domain.MealType, recipe domain.Recipe) bool {
	plan := s.Get()
	if !plan.SetMeal(day, meal, &recipe) {
		logger.Debug("rejected meal slot %s/%s", day, meal)
		return false
	}
	return s.store.Save(keyMealPlan, plan)
}

// RemoveMeal empties a slot and persists the plan. Returns false if the
// day or meal type is not recognised.
func (s *MealPlanService) RemoveMeal(day domain.Weekday, meal domain.MealType) bool {
	plan := s.Get()
	if !plan.RemoveMeal(day, meal) {
		return false
	}
	return s.store.Save(keyMealPlan, plan)
}

// Clear empties every slot of every day.
func (s *MealPlanService) Clear() {
	s.store.Save(keyMealPlan, domain.NewMealPlan())
}

// AllMeals enumerates occupied slots in plan order.
func (s *MealPlanService) AllMeals() []domain.PlannedMeal {
	return s.Get().Meals()
}
