package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

var (
	recipeSimilar bool
	recipeJSON    bool
	randomLimit   int
)

var recipeCmd = &cobra.Command{
	Use:   "recipe [id]",
	Short: "Show full details for a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipe,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Suggest random recipes",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	recipeCmd.Flags().BoolVar(&recipeSimilar, "similar", false, "list similar recipes instead of details")
	recipeCmd.Flags().BoolVar(&recipeJSON, "json", false, "output as JSON")
	randomCmd.Flags().IntVarP(&randomLimit, "limit", "n", 5, "number of suggestions")
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(randomCmd)
}

func runRecipe(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	ctx := context.Background()

	if recipeSimilar {
		results, err := discoveryService.Similar(ctx, id, 10)
		if err != nil {
			return fmt.Errorf("fetching similar recipes: %w", err)
		}
		outputSummaries(cmd, results)
		return nil
	}

	recipe, err := discoveryService.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		return fmt.Errorf("fetching recipe: %w", err)
	}

	if recipeJSON {
		return outputJSON(cmd, recipe)
	}
	outputRecipe(cmd, recipe)
	return nil
}

func runRandom(cmd *cobra.Command, _ []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	results, err := discoveryService.Random(context.Background(), randomLimit)
	if err != nil {
		return fmt.Errorf("fetching random recipes: %w", err)
	}
	outputSummaries(cmd, results)
	return nil
}

func outputRecipe(cmd *cobra.Command, r *domain.Recipe) {
	cmd.Printf("%s (id %d)\n", r.Title, r.ID)
	if r.ReadyInMinutes > 0 {
		cmd.Printf("Ready in %d min, serves %d\n", r.ReadyInMinutes, r.Servings)
	}
	if tags := dietTags(r); len(tags) > 0 {
		cmd.Printf("Diets: %s\n", strings.Join(tags, ", "))
	}

	if len(r.Ingredients) > 0 {
		cmd.Println()
		cmd.Println("Ingredients:")
		for _, ing := range r.Ingredients {
			cmd.Printf("  - %g %s %s\n", ing.Amount, ing.Unit, ing.Name)
		}
	}

	summary := domain.ExtractNutrition(r)
	cmd.Println()
	cmd.Printf("Per serving: %d kcal, %dg protein, %dg carbs, %dg fat\n",
		summary.Calories, summary.Protein, summary.Carbs, summary.Fat)
}

func dietTags(r *domain.Recipe) []string {
	var tags []string
	if r.Vegetarian {
		tags = append(tags, "vegetarian")
	}
	if r.Vegan {
		tags = append(tags, "vegan")
	}
	if r.GlutenFree {
		tags = append(tags, "gluten-free")
	}
	if r.DairyFree {
		tags = append(tags, "dairy-free")
	}
	return tags
}
