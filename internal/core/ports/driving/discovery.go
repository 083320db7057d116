package driving

import (
	"context"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

// DiscoveryService searches the recipe catalog, recording search history
// and applying stored preference defaults to queries.
type DiscoveryService interface {
	// Search runs a catalog search. Non-blank queries are recorded in the
	// recent-search history. Diet, cuisine and max-ready-time fall back
	// to the stored preferences when the query leaves them unset.
	Search(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeSummary, error)

	// GetRecipe fetches a full recipe snapshot by catalog id.
	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)

	// Similar lists recipes similar to the given one.
	Similar(ctx context.Context, id int, limit int) ([]domain.RecipeSummary, error)

	// Random returns random recipe suggestions.
	Random(ctx context.Context, limit int) ([]domain.RecipeSummary, error)
}
