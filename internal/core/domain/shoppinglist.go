package domain

// ShoppingListEntry is one aggregated ingredient in a shopping list
// derived from the meal plan. It is a computed projection; persisting it
// as a ShoppingItem is the caller's choice.
type ShoppingListEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
	Unit     string   `json:"unit,omitempty"`
	Checked  bool     `json:"checked"`
}

// BuildShoppingList aggregates the ingredients of every planned meal into
// a shopping list. Slots are visited in plan order (see MealPlan.Meals)
// and ingredients are grouped by exact name: the first occurrence fixes
// the entry's category (from the aisle hint, falling back to the name)
// and unit, later occurrences of the same name add their amount.
//
// Amounts are summed numerically even when units differ between
// occurrences. Unit reconciliation is a known limitation of the source
// data, not handled here.
func BuildShoppingList(plan MealPlan) []ShoppingListEntry {
	var entries []ShoppingListEntry
	index := make(map[string]int)

	for _, meal := range plan.Meals() {
		for _, ing := range meal.Recipe.Ingredients {
			if i, ok := index[ing.Name]; ok {
				entries[i].Amount += ing.Amount
				continue
			}

			hint := ing.Aisle
			if hint == "" {
				hint = ing.Name
			}
			index[ing.Name] = len(entries)
			entries = append(entries, ShoppingListEntry{
				Name:     ing.Name,
				Category: CategorizeIngredient(hint),
				Amount:   ing.Amount,
				Unit:     ing.Unit,
			})
		}
	}

	return entries
}
