package driven

import (
	"context"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

// RecipeCatalog provides access to the external recipe catalog API.
// Implementations are expected to cache responses (flat TTL expiry) and
// rate-limit outbound requests. Failures surface as errors here; the
// driving layer decides how to degrade.
type RecipeCatalog interface {
	// Search finds recipes matching the query.
	Search(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeSummary, error)

	// GetRecipe fetches the full snapshot for a recipe, including
	// nutrition and ingredients. Returns domain.ErrNotFound for unknown
	// ids.
	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)

	// Similar lists recipes similar to the given one.
	Similar(ctx context.Context, id int, limit int) ([]domain.RecipeSummary, error)

	// Random returns random recipes, e.g. for an empty start page.
	Random(ctx context.Context, limit int) ([]domain.RecipeSummary, error)
}
