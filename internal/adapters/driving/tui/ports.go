// Package tui provides the interactive terminal UI for Plateful.
package tui

import (
	"errors"

	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
)

// ErrMissingDiscoveryService is returned when the discovery service is not provided.
var ErrMissingDiscoveryService = errors.New("tui: discovery service is required")

// Ports aggregates the driving port interfaces the TUI needs.
type Ports struct {
	// Discovery searches the recipe catalog.
	Discovery driving.DiscoveryService

	// Favorites manages saved recipes.
	Favorites driving.FavoritesService

	// MealPlan manages the weekly plan.
	MealPlan driving.MealPlanService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p.Discovery == nil {
		return ErrMissingDiscoveryService
	}
	return nil
}
