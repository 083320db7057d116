package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

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

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingDiscoveryService)
	assert.NoError(t, (&Ports{Discovery: &fakeDiscovery{}}).Validate())
}

func TestApp_SearchResults(t *testing.T) {
	app := NewApp(&Ports{Discovery: &fakeDiscovery{}})

	model, _ := app.Update(searchResultsMsg{results: []domain.RecipeSummary{
		{ID: 1, Title: "Pasta"},
		{ID: 2, Title: "Salad"},
	}})
	app = model.(*App)

	require.Len(t, app.results, 2)
	assert.Equal(t, 0, app.cursor)
	assert.False(t, app.focusInput)

	// navigate down then back up
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.cursor)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.cursor)
}

func TestApp_EmptyResultsKeepInputFocus(t *testing.T) {
	app := NewApp(&Ports{Discovery: &fakeDiscovery{}})

	model, _ := app.Update(searchResultsMsg{})
	app = model.(*App)

	assert.True(t, app.focusInput)
	assert.Equal(t, "No recipes found.", app.status)
}

func TestApp_ErrMsgShowsError(t *testing.T) {
	app := NewApp(&Ports{Discovery: &fakeDiscovery{}})
	app.searching = true

	model, _ := app.Update(errMsg{err: domain.ErrCatalogUnavailable})
	app = model.(*App)

	assert.False(t, app.searching)
	assert.ErrorIs(t, app.err, domain.ErrCatalogUnavailable)
	assert.Contains(t, app.View(), "Error:")
}

func TestApp_EscFromResultsReturnsToInput(t *testing.T) {
	app := NewApp(&Ports{Discovery: &fakeDiscovery{}})

	model, _ := app.Update(searchResultsMsg{results: []domain.RecipeSummary{{ID: 1, Title: "Pasta"}}})
	app = model.(*App)
	require.False(t, app.focusInput)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.True(t, app.focusInput)
}
