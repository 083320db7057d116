package domain

import "strings"

// CookingTimeLimit buckets the optional maximum cooking time preference.
type CookingTimeLimit string

// Cooking time buckets, in minutes. Empty means no limit.
const (
	CookingTimeNoLimit CookingTimeLimit = ""
	CookingTime15      CookingTimeLimit = "15"
	CookingTime30      CookingTimeLimit = "30"
	CookingTime45      CookingTimeLimit = "45"
	CookingTime60      CookingTimeLimit = "60"
)

// IsValid returns true if the limit is a recognised bucket.
func (l CookingTimeLimit) IsValid() bool {
	switch l {
	case CookingTimeNoLimit, CookingTime15, CookingTime30, CookingTime45, CookingTime60:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l CookingTimeLimit) String() string {
	return string(l)
}

// Description returns a human-readable description of the limit.
func (l CookingTimeLimit) Description() string {
	if l == CookingTimeNoLimit {
		return "no limit"
	}
	return string(l) + " min"
}

// UserPreferences holds the single per-profile preferences record:
// selected diet/allergy/cuisine tags, daily nutrition goals, and an
// optional cooking-time constraint.
//
// The store persists preferences as given. Numeric goal ranges are a
// caller-side validation concern (see GoalRanges); by contract this layer
// trusts pre-validated input.
type UserPreferences struct {
	// Diets, Allergies and Cuisines are sets of string tags. Duplicates
	// collapse on save; order carries no meaning.
	Diets     []string `json:"diets"`
	Allergies []string `json:"allergies"`
	Cuisines  []string `json:"cuisines"`

	// Daily nutrition goals: kcal for calories, grams for the rest.
	CalorieGoal int `json:"calorieGoal"`
	ProteinGoal int `json:"proteinGoal"`
	CarbsGoal   int `json:"carbsGoal"`
	FatGoal     int `json:"fatGoal"`

	// MaxCookingTime bounds recipe ready-time; empty means no limit.
	MaxCookingTime CookingTimeLimit `json:"maxCookingTime"`

	// LastUpdated is when the record was last saved, in epoch
	// milliseconds.
	LastUpdated int64 `json:"lastUpdated"`
}

// DefaultUserPreferences returns the documented defaults used when no
// preferences record has been saved.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Diets:       []string{},
		Allergies:   []string{},
		Cuisines:    []string{},
		CalorieGoal: 2000,
		ProteinGoal: 150,
		CarbsGoal:   250,
		FatGoal:     65,
	}
}

// Normalize collapses duplicate tags in each tag set, preserving first
// occurrence order, and replaces nil sets with empty ones.
func (p *UserPreferences) Normalize() {
	p.Diets = dedupeTags(p.Diets)
	p.Allergies = dedupeTags(p.Allergies)
	p.Cuisines = dedupeTags(p.Cuisines)
}

func dedupeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, tag)
	}
	return result
}

// GoalRange is the closed valid range for one numeric goal.
type GoalRange struct {
	Min int
	Max int
}

// Contains returns true if v falls within the range.
func (r GoalRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// GoalRanges returns the valid closed range for each numeric goal field,
// keyed by the preference field name. Range validation happens in the
// form-handling surface before saving, not in the store.
func GoalRanges() map[string]GoalRange {
	return map[string]GoalRange{
		"calorieGoal": {Min: 1000, Max: 5000},
		"proteinGoal": {Min: 10, Max: 300},
		"carbsGoal":   {Min: 50, Max: 500},
		"fatGoal":     {Min: 10, Max: 200},
	}
}

// GoalProgress reports consumption against one daily goal.
type GoalProgress struct {
	Consumed int `json:"consumed"`
	Goal     int `json:"goal"`
	// Percent is consumed/goal as a whole percentage, 0 when the goal
	// is unset.
	Percent int `json:"percent"`
}

// ProgressAgainst compares a nutrition summary with the daily goals.
func (p UserPreferences) ProgressAgainst(n NutritionSummary) map[string]GoalProgress {
	return map[string]GoalProgress{
		"calories": progress(n.Calories, p.CalorieGoal),
		"protein":  progress(n.Protein, p.ProteinGoal),
		"carbs":    progress(n.Carbs, p.CarbsGoal),
		"fat":      progress(n.Fat, p.FatGoal),
	}
}

func progress(consumed, goal int) GoalProgress {
	gp := GoalProgress{Consumed: consumed, Goal: goal}
	if goal > 0 {
		gp.Percent = roundDiv(consumed*100, goal)
	}
	return gp
}
