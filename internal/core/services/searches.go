package services

import (
	"strings"

	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
)

// Ensure RecentSearchesService implements the interface.
var _ driving.RecentSearchesService = (*RecentSearchesService)(nil)

// maxRecentSearches caps the search history length.
const maxRecentSearches = 10

// RecentSearchesService manages the recent-search history.
type RecentSearchesService struct {
	store driven.KeyValueStore
}

// NewRecentSearchesService creates a new recent-searches service.
func NewRecentSearchesService(store driven.KeyValueStore) *RecentSearchesService {
	return &RecentSearchesService{store: store}
}

// List returns recent queries, most recent first.
func (s *RecentSearchesService) List() []string {
	var searches []string
	s.store.Load(keyRecentSearches, &searches)
	return searches
}

// Add records a query at the front of the history. Blank input is
// ignored; an existing equal entry moves to the front instead of
// duplicating; the history is truncated to ten entries.
func (s *RecentSearchesService) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	searches := s.List()
	kept := make([]string, 0, len(searches)+1)
	kept = append(kept, query)
	for _, q := range searches {
		if q != query {
			kept = append(kept, q)
		}
	}
	if len(kept) > maxRecentSearches {
		kept = kept[:maxRecentSearches]
	}
	s.store.Save(keyRecentSearches, kept)
}

// Clear resets the history to empty.
func (s *RecentSearchesService) Clear() {
	s.store.Save(keyRecentSearches, []string{})
}
