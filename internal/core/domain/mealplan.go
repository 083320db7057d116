package domain

// Weekday names the seven plan days, lowercase, as used for storage keys.
type Weekday string

// Plan days, in plan order.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays returns the seven plan days in plan order (monday first).
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsValid returns true if the weekday is one of the seven recognised days.
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Weekday) String() string {
	return string(d)
}

// MealType names the three meal slots of a plan day.
type MealType string

// Meal slots, in slot order.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// AllMealTypes returns the meal slots in slot order (breakfast first).
func AllMealTypes() []MealType {
	return []MealType{Breakfast, Lunch, Dinner}
}

// IsValid returns true if the meal type is recognised.
func (m MealType) IsValid() bool {
	switch m {
	case Breakfast, Lunch, Dinner:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MealType) String() string {
	return string(m)
}

// DayMeals holds the three meal slots of one plan day. A nil slot means
// no meal is planned.
type DayMeals struct {
	Breakfast *Recipe `json:"breakfast"`
	Lunch     *Recipe `json:"lunch"`
	Dinner    *Recipe `json:"dinner"`
}

// Meal returns the recipe in the given slot, or nil.
func (d *DayMeals) Meal(t MealType) *Recipe {
	switch t {
	case Breakfast:
		return d.Breakfast
	case Lunch:
		return d.Lunch
	case Dinner:
		return d.Dinner
	default:
		return nil
	}
}

// SetMeal places a recipe in the given slot, overwriting any current meal.
func (d *DayMeals) SetMeal(t MealType, r *Recipe) {
	switch t {
	case Breakfast:
		d.Breakfast = r
	case Lunch:
		d.Lunch = r
	case Dinner:
		d.Dinner = r
	}
}

// MealPlan is the weekly grid of meal slots. Invariant: the seven-day key
// set is complete. Every weekday maps to a DayMeals, and empty slots are
// nil recipes rather than missing keys.
type MealPlan map[Weekday]*DayMeals

// NewMealPlan returns a plan with all 21 slots present and empty.
func NewMealPlan() MealPlan {
	plan := make(MealPlan, 7)
	for _, day := range AllWeekdays() {
		plan[day] = &DayMeals{}
	}
	return plan
}

// Normalize restores any day keys missing from a stored plan so the
// complete-key-set invariant holds after deserialisation.
func (p MealPlan) Normalize() {
	for _, day := range AllWeekdays() {
		if p[day] == nil {
			p[day] = &DayMeals{}
		}
	}
}

// SetMeal places a recipe in the given slot. Returns false without
// mutating the plan if the day or meal type is not recognised.
func (p MealPlan) SetMeal(day Weekday, meal MealType, r *Recipe) bool {
	if !day.IsValid() || !meal.IsValid() {
		return false
	}
	p.Normalize()
	p[day].SetMeal(meal, r)
	return true
}

// RemoveMeal empties the given slot. Returns false if the day or meal
// type is not recognised.
func (p MealPlan) RemoveMeal(day Weekday, meal MealType) bool {
	return p.SetMeal(day, meal, nil)
}

// PlannedMeal is one occupied slot of the plan.
type PlannedMeal struct {
	Day      Weekday  `json:"day"`
	MealType MealType `json:"mealType"`
	Recipe   *Recipe  `json:"recipe"`
}

// Meals enumerates the occupied slots in plan order: day order
// (monday..sunday) crossed with slot order (breakfast, lunch, dinner).
// The order is independent of insertion order.
func (p MealPlan) Meals() []PlannedMeal {
	var meals []PlannedMeal
	for _, day := range AllWeekdays() {
		dm := p[day]
		if dm == nil {
			continue
		}
		for _, slot := range AllMealTypes() {
			if r := dm.Meal(slot); r != nil {
				meals = append(meals, PlannedMeal{Day: day, MealType: slot, Recipe: r})
			}
		}
	}
	return meals
}
