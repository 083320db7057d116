package driving

import "github.com/plateful-labs/plateful-cli/internal/core/domain"

// ShoppingService manages the persisted shopping list and derives
// shopping lists from the meal plan.
type ShoppingService interface {
	// List returns shopping items in insertion order.
	List() []domain.ShoppingItem

	// Add inserts a named item. Name uniqueness is case-insensitive:
	// adding a name that already exists returns false and leaves the
	// existing entry untouched. The category defaults to "other" when
	// empty or unrecognised; Checked starts false.
	Add(name string, category domain.Category) bool

	// Remove deletes the item with the given id. Absent ids are a no-op.
	Remove(id string)

	// Toggle flips an item's checked state and persists. Returns false
	// if the id is not found.
	Toggle(id string) bool

	// Clear resets the list to empty.
	Clear()

	// GenerateFromMealPlan computes a shopping list from the current meal
	// plan's ingredients. The result is a projection; it is not persisted
	// here. Import persists each generated entry through Add and reports
	// how many were newly added.
	GenerateFromMealPlan() []domain.ShoppingListEntry

	// Import persists generated entries as shopping items, skipping names
	// already on the list. Returns the number of items added.
	Import(entries []domain.ShoppingListEntry) int
}
