package services

// Logical storage keys. Each collection is serialised independently
// under its own key; absence of a key means "use the documented default"
// and is distinguishable from an empty collection.
const (
	keyFavorites       = "favorites"
	keyMealPlan        = "meal_plan"
	keyShoppingList    = "shopping_list"
	keyUserPreferences = "user_preferences"
	keyRecentSearches  = "recent_searches"
)

// KnownStorageKeys returns every logical key owned by the domain store,
// for adapters that clear a whole profile.
func KnownStorageKeys() []string {
	return []string{
		keyFavorites,
		keyMealPlan,
		keyShoppingList,
		keyUserPreferences,
		keyRecentSearches,
	}
}
