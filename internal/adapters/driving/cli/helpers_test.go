package cli

import (
	"context"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/services"
)

// fakeDiscovery is a canned driving.DiscoveryService for command tests.
type fakeDiscovery struct {
	results []domain.RecipeSummary
	recipe  *domain.Recipe
	err     error
}

func (f *fakeDiscovery) Search(_ context.Context, _ domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	return f.results, f.err
}

func (f *fakeDiscovery) GetRecipe(_ context.Context, _ int) (*domain.Recipe, error) {
	return f.recipe, f.err
}

func (f *fakeDiscovery) Similar(_ context.Context, _ int, _ int) ([]domain.RecipeSummary, error) {
	return f.results, f.err
}

func (f *fakeDiscovery) Random(_ context.Context, _ int) ([]domain.RecipeSummary, error) {
	return f.results, f.err
}

// setupTestServices wires the package-level services to an in-memory store
// and a canned catalog. The returned cleanup resets them so initServices
// runs normally again.
func setupTestServices() func() {
	store := memory.NewKVStore()
	plan := services.NewMealPlanService(store)
	prefs := services.NewPreferencesService(store)
	searches := services.NewRecentSearchesService(store)

	favoritesService = services.NewFavoritesService(store)
	planService = plan
	shoppingService = services.NewShoppingService(store, plan)
	preferencesService = prefs
	searchesService = searches
	nutritionService = services.NewNutritionService(plan, prefs)
	discoveryService = &fakeDiscovery{
		results: []domain.RecipeSummary{
			{ID: 716429, Title: "Pasta with Garlic", ReadyInMinutes: 45},
		},
		recipe: &domain.Recipe{ID: 716429, Title: "Pasta with Garlic", Servings: 2},
	}

	return func() {
		appConfig = nil
		kvStore = nil
		favoritesService = nil
		planService = nil
		shoppingService = nil
		preferencesService = nil
		searchesService = nil
		nutritionService = nil
		discoveryService = nil
	}
}
