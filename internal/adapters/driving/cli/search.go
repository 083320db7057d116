package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

var (
	searchDiet    string
	searchCuisine string
	searchMaxTime int
	searchLimit   int
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the recipe catalog",
	Long: `Searches the recipe catalog by free text. Diet, cuisine and maximum
cooking time default to your stored preferences unless overridden.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchDiet, "diet", "", "diet filter (e.g. vegetarian, vegan)")
	searchCmd.Flags().StringVar(&searchCuisine, "cuisine", "", "cuisine filter (e.g. italian, thai)")
	searchCmd.Flags().IntVar(&searchMaxTime, "max-time", 0, "maximum ready time in minutes")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	query := domain.RecipeQuery{
		Text:         args[0],
		Diet:         searchDiet,
		Cuisine:      searchCuisine,
		MaxReadyTime: searchMaxTime,
		Limit:        searchLimit,
	}

	results, err := discoveryService.Search(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, results)
	}
	outputSummaries(cmd, results)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSummaries(cmd *cobra.Command, results []domain.RecipeSummary) {
	if len(results) == 0 {
		cmd.Println("No recipes found.")
		return
	}

	for i := range results {
		cmd.Printf("  [%d] %s (id %d)\n", i+1, results[i].Title, results[i].ID)
		if results[i].ReadyInMinutes > 0 {
			cmd.Printf("      Ready in %d min\n", results[i].ReadyInMinutes)
		}
	}
	cmd.Println()
	cmd.Printf("%d recipe(s). Use 'plateful recipe <id>' for details.\n", len(results))
}
