package driving

// RecentSearchesService manages the recent-search history.
type RecentSearchesService interface {
	// List returns recent queries, most recent first, at most ten.
	List() []string

	// Add records a query. Blank or whitespace-only input is ignored; a
	// query already in the history moves to the front instead of
	// duplicating; the history is truncated to ten entries.
	Add(query string)

	// Clear resets the history to empty.
	Clear()
}
