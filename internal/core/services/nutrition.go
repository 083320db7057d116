package services

import (
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
)

// Ensure NutritionService implements the interface.
var _ driving.NutritionService = (*NutritionService)(nil)

// NutritionService aggregates nutrition over the meal plan and compares
// it with the preference goals. It only reads from the other services.
type NutritionService struct {
	plan  driving.MealPlanService
	prefs driving.PreferencesService
}

// NewNutritionService creates a new nutrition service.
func NewNutritionService(plan driving.MealPlanService, prefs driving.PreferencesService) *NutritionService {
	return &NutritionService{plan: plan, prefs: prefs}
}

// Daily returns the nutrition total for one plan day. Returns false for
// an unrecognised day.
func (s *NutritionService) Daily(day domain.Weekday) (domain.NutritionSummary, bool) {
	if !day.IsValid() {
		return domain.NutritionSummary{}, false
	}
	return domain.DayNutrition(s.plan.Get(), day), true
}

// WeeklyAverage returns the per-calendar-day average across the plan.
func (s *NutritionService) WeeklyAverage() domain.NutritionSummary {
	return domain.WeeklyAverageNutrition(s.plan.Get())
}

// MonthlyAverage returns the monthly view, which is defined to be the
// same computation as the weekly one.
func (s *NutritionService) MonthlyAverage() domain.NutritionSummary {
	return s.WeeklyAverage()
}

// DailyProgress reports a day's totals against the stored goals.
func (s *NutritionService) DailyProgress(day domain.Weekday) (map[string]domain.GoalProgress, bool) {
	total, ok := s.Daily(day)
	if !ok {
		return nil, false
	}
	return s.prefs.Get().ProgressAgainst(total), true
}
