package domain

import "math"

// Canonical nutrient names consumed from the catalog's nutrition payload.
const (
	NutrientCalories = "Calories"
	NutrientProtein  = "Protein"
	NutrientCarbs    = "Carbohydrates"
	NutrientFat      = "Fat"
)

// NutritionSummary holds the four tracked nutrients, rounded to whole
// units (kcal for calories, grams for the rest).
type NutritionSummary struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Add returns the component-wise sum of two summaries.
func (n NutritionSummary) Add(other NutritionSummary) NutritionSummary {
	return NutritionSummary{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
}

// ExtractNutrition reads the four canonical nutrients from a recipe
// snapshot. Each value is rounded to the nearest integer; a nutrient
// missing from the payload, or a recipe without nutrition data, reads
// as zero.
func ExtractNutrition(r *Recipe) NutritionSummary {
	var summary NutritionSummary
	if r == nil || r.Nutrition == nil {
		return summary
	}
	for _, n := range r.Nutrition.Nutrients {
		amount := int(math.Round(n.Amount))
		switch n.Name {
		case NutrientCalories:
			summary.Calories = amount
		case NutrientProtein:
			summary.Protein = amount
		case NutrientCarbs:
			summary.Carbs = amount
		case NutrientFat:
			summary.Fat = amount
		}
	}
	return summary
}

// DayNutrition sums the nutrition of the three meal slots of one day.
// An unrecognised day reads as zero.
func DayNutrition(plan MealPlan, day Weekday) NutritionSummary {
	var total NutritionSummary
	dm := plan[day]
	if dm == nil {
		return total
	}
	for _, slot := range AllMealTypes() {
		total = total.Add(ExtractNutrition(dm.Meal(slot)))
	}
	return total
}

// WeeklyAverageNutrition sums nutrition across all seven days and divides
// by 7, rounding each component. Days without meals count toward the
// divisor, so the result is a per-calendar-day average rather than a
// per-day-with-meals average.
func WeeklyAverageNutrition(plan MealPlan) NutritionSummary {
	var total NutritionSummary
	for _, day := range AllWeekdays() {
		total = total.Add(DayNutrition(plan, day))
	}
	return NutritionSummary{
		Calories: roundDiv(total.Calories, 7),
		Protein:  roundDiv(total.Protein, 7),
		Carbs:    roundDiv(total.Carbs, 7),
		Fat:      roundDiv(total.Fat, 7),
	}
}

func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
