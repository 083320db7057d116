package mcp

import (
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Discovery searches the recipe catalog.
	Discovery driving.DiscoveryService

	// Favorites manages saved recipes.
	Favorites driving.FavoritesService

	// MealPlan manages the weekly plan.
	MealPlan driving.MealPlanService

	// Shopping manages the shopping list.
	Shopping driving.ShoppingService

	// Nutrition aggregates plan nutrition.
	Nutrition driving.NutritionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Discovery == nil {
		return ErrMissingDiscoveryService
	}
	if p.MealPlan == nil {
		return ErrMissingMealPlanService
	}
	// Favorites, Shopping and Nutrition tools are skipped when unset
	return nil
}
