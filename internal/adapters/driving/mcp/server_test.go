package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/memory"
	"github.com/plateful-labs/plateful-cli/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil discovery service returns error", func(t *testing.T) {
		ports := &Ports{MealPlan: services.NewMealPlanService(memory.NewKVStore())}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDiscoveryService)
	})

	t.Run("nil meal plan service returns error", func(t *testing.T) {
		ports := &Ports{Discovery: &mockDiscoveryService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingMealPlanService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Discovery: &mockDiscoveryService{},
			MealPlan:  services.NewMealPlanService(memory.NewKVStore()),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("discovery and meal plan are required", func(t *testing.T) {
		err := (&Ports{}).Validate()
		assert.ErrorIs(t, err, ErrMissingDiscoveryService)
	})

	t.Run("optional ports may be nil", func(t *testing.T) {
		ports := &Ports{
			Discovery: &mockDiscoveryService{},
			MealPlan:  services.NewMealPlanService(memory.NewKVStore()),
		}
		assert.NoError(t, ports.Validate())
	})
}
