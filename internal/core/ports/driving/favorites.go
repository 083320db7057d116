package driving

import "github.com/plateful-labs/plateful-cli/internal/core/domain"

// FavoritesService manages the saved-recipes collection.
type FavoritesService interface {
	// List returns favorites in insertion order. Empty when none stored.
	List() []domain.Favorite

	// Add saves a recipe snapshot. Returns false without mutating the
	// collection if the recipe id is already saved.
	Add(recipe domain.Recipe) bool

	// Remove deletes the favorite with the given recipe id. Removing an
	// absent id is a no-op.
	Remove(id int)

	// Contains reports whether the recipe id is saved.
	Contains(id int) bool

	// Clear resets the collection to empty.
	Clear()
}
