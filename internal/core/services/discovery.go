package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
)

// Ensure DiscoveryService implements the interface.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService searches the recipe catalog, recording search history
// and applying stored preference defaults to queries.
type DiscoveryService struct {
	catalog  driven.RecipeCatalog
	searches driving.RecentSearchesService
	prefs    driving.PreferencesService
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(
	catalog driven.RecipeCatalog,
	searches driving.RecentSearchesService,
	prefs driving.PreferencesService,
) *DiscoveryService {
	return &DiscoveryService{
		catalog:  catalog,
		searches: searches,
		prefs:    prefs,
	}
}

// Search runs a catalog search, recording the query in the recent-search
// history. Diet, cuisine and max-ready-time fall back to the stored
// preferences when the query leaves them unset.
func (s *DiscoveryService) Search(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	s.applyPreferenceDefaults(&query)

	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	if strings.TrimSpace(query.Text) != "" {
		s.searches.Add(query.Text)
	}
	return results, nil
}

// GetRecipe fetches a full recipe snapshot by catalog id.
func (s *DiscoveryService) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.GetRecipe(ctx, id)
}

// Similar lists recipes similar to the given one.
func (s *DiscoveryService) Similar(ctx context.Context, id int, limit int) ([]domain.RecipeSummary, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.Similar(ctx, id, limit)
}

// Random returns random recipe suggestions.
func (s *DiscoveryService) Random(ctx context.Context, limit int) ([]domain.RecipeSummary, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return s.catalog.Random(ctx, limit)
}

// applyPreferenceDefaults fills unset query fields from the stored
// preferences: first selected diet, first selected cuisine, and the
// max-cooking-time bucket.
func (s *DiscoveryService) applyPreferenceDefaults(query *domain.RecipeQuery) {
	if s.prefs == nil {
		return
	}
	prefs := s.prefs.Get()

	if query.Diet == "" && len(prefs.Diets) > 0 {
		query.Diet = prefs.Diets[0]
	}
	if query.Cuisine == "" && len(prefs.Cuisines) > 0 {
		query.Cuisine = prefs.Cuisines[0]
	}
	if query.MaxReadyTime == 0 && prefs.MaxCookingTime != domain.CookingTimeNoLimit {
		if minutes, err := strconv.Atoi(prefs.MaxCookingTime.String()); err == nil {
			query.MaxReadyTime = minutes
		}
	}
}
