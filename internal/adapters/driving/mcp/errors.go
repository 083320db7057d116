// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Plateful. It lets AI assistants search the recipe catalog and work with
// the local meal plan, shopping list and nutrition data.
package mcp

import "errors"

// ErrMissingDiscoveryService is returned when the discovery service is not provided.
var ErrMissingDiscoveryService = errors.New("mcp: discovery service is required")

// ErrMissingMealPlanService is returned when the meal plan service is not provided.
var ErrMissingMealPlanService = errors.New("mcp: meal plan service is required")
