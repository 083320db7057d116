package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driving/tui/styles"
	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

// searchResultsMsg carries catalog search results back into the update loop.
type searchResultsMsg struct {
	results []domain.RecipeSummary
}

// favoritedMsg reports the outcome of saving a result to favorites.
type favoritedMsg struct {
	title string
	added bool
}

// errMsg carries an async failure.
type errMsg struct {
	err error
}

// App is the root bubbletea model: a search input over a navigable
// result list, with keys to favorite the selected recipe.
type App struct {
	ports  *Ports
	styles *styles.Styles
	ctx    context.Context

	input   textinput.Model
	results []domain.RecipeSummary
	cursor  int

	focusInput bool
	searching  bool
	status     string
	err        error

	width  int
	height int
}

// NewApp creates the root model.
func NewApp(ports *Ports) *App {
	input := textinput.New()
	input.Placeholder = "Search recipes..."
	input.CharLimit = 120
	input.Focus()

	return &App{
		ports:      ports,
		styles:     styles.DefaultStyles(),
		ctx:        context.Background(),
		input:      input,
		focusInput: true,
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 6
		return a, nil

	case searchResultsMsg:
		a.searching = false
		a.results = msg.results
		a.cursor = 0
		a.err = nil
		if len(msg.results) == 0 {
			a.status = "No recipes found."
		} else {
			a.status = fmt.Sprintf("%d recipe(s).", len(msg.results))
			a.focusInput = false
			a.input.Blur()
		}
		return a, nil

	case favoritedMsg:
		if msg.added {
			a.status = fmt.Sprintf("Saved %s to favorites.", msg.title)
		} else {
			a.status = fmt.Sprintf("%s is already a favorite.", msg.title)
		}
		return a, nil

	case errMsg:
		a.searching = false
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		if !a.focusInput {
			a.focusInput = true
			a.input.Focus()
			return a, textinput.Blink
		}
		return a, tea.Quit
	}

	if a.focusInput {
		if msg.String() == "enter" {
			query := strings.TrimSpace(a.input.Value())
			if query == "" || a.searching {
				return a, nil
			}
			a.searching = true
			a.status = "Searching..."
			return a, a.search(query)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
	case "/":
		a.focusInput = true
		a.input.Focus()
		return a, textinput.Blink
	case "f":
		if selected := a.selected(); selected != nil {
			return a, a.favorite(selected.ID)
		}
	}
	return a, nil
}

func (a *App) selected() *domain.RecipeSummary {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return nil
	}
	return &a.results[a.cursor]
}

// search runs a catalog search off the update loop.
func (a *App) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Discovery.Search(a.ctx, domain.RecipeQuery{Text: query, Limit: 20})
		if err != nil {
			return errMsg{err: err}
		}
		return searchResultsMsg{results: results}
	}
}

// favorite fetches the full recipe and saves it.
func (a *App) favorite(id int) tea.Cmd {
	return func() tea.Msg {
		if a.ports.Favorites == nil {
			return errMsg{err: fmt.Errorf("favorites are not available")}
		}
		recipe, err := a.ports.Discovery.GetRecipe(a.ctx, id)
		if err != nil {
			return errMsg{err: err}
		}
		return favoritedMsg{title: recipe.Title, added: a.ports.Favorites.Add(*recipe)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Plateful"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	for i := range a.results {
		line := fmt.Sprintf("%s (id %d)", a.results[i].Title, a.results[i].ID)
		if i == a.cursor && !a.focusInput {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	} else if a.status != "" {
		b.WriteString(a.styles.Muted.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter search · ↑/↓ navigate · f favorite · / search box · q quit"))
	return b.String()
}

// Run validates the ports and starts the TUI program.
func Run(ports *Ports) error {
	if err := ports.Validate(); err != nil {
		return err
	}

	program := tea.NewProgram(NewApp(ports), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
