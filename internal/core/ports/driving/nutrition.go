package driving

import "github.com/plateful-labs/plateful-cli/internal/core/domain"

// NutritionService aggregates nutrition over the meal plan and compares
// it with the preference goals.
type NutritionService interface {
	// Daily returns the nutrition total for one plan day. Returns false
	// for an unrecognised day.
	Daily(day domain.Weekday) (domain.NutritionSummary, bool)

	// WeeklyAverage returns the per-calendar-day average across the whole
	// plan (sum of all days divided by seven, meal-free days included).
	WeeklyAverage() domain.NutritionSummary

	// MonthlyAverage is the monthly view of the same data. It is defined
	// to be identical to WeeklyAverage, not a distinct computation.
	MonthlyAverage() domain.NutritionSummary

	// DailyProgress reports a day's totals against the stored goals.
	DailyProgress(day domain.Weekday) (map[string]domain.GoalProgress, bool)
}
