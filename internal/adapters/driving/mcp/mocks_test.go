package mcp

import (
	"context"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

// mockDiscoveryService is a mock implementation of driving.DiscoveryService.
type mockDiscoveryService struct {
	results []domain.RecipeSummary
	recipe  *domain.Recipe
	err     error

	lastQuery domain.RecipeQuery
}

func (m *mockDiscoveryService) Search(_ context.Context, query domain.RecipeQuery) ([]domain.RecipeSummary, error) {
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockDiscoveryService) GetRecipe(_ context.Context, _ int) (*domain.Recipe, error) {
	return m.recipe, m.err
}

func (m *mockDiscoveryService) Similar(_ context.Context, _ int, _ int) ([]domain.RecipeSummary, error) {
	return m.results, m.err
}

func (m *mockDiscoveryService) Random(_ context.Context, _ int) ([]domain.RecipeSummary, error) {
	return m.results, m.err
}
