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

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly meal plan",
	RunE:  runPlanShow,
}

var planAddCmd = &cobra.Command{
	Use:   "add [day] [meal] [recipe-id]",
	Short: "Place a recipe in a plan slot",
	Long: `Places a recipe in the given slot, overwriting any current meal.
Day is monday..sunday; meal is breakfast, lunch or dinner.`,
	Args: cobra.ExactArgs(3),
	RunE: runPlanAdd,
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove [day] [meal]",
	Short: "Empty a plan slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlanRemove,
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty every plan slot",
	Args:  cobra.NoArgs,
	RunE:  runPlanClear,
}

func init() {
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planClearCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlanShow(cmd *cobra.Command, _ []string) error {
	if planService == nil {
		return errors.New("meal plan service not configured")
	}

	plan := planService.Get()
	for _, day := range domain.AllWeekdays() {
		cmd.Printf("%s:\n", titleCase(day.String()))
		meals := plan[day]
		for _, mealType := range domain.AllMealTypes() {
			recipe := meals.Meal(mealType)
			if recipe == nil {
				cmd.Printf("  %-10s -\n", mealType)
			} else {
				cmd.Printf("  %-10s %s (id %d)\n", mealType, recipe.Title, recipe.ID)
			}
		}
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func runPlanAdd(cmd *cobra.Command, args []string) error {
	if planService == nil || discoveryService == nil {
		return errors.New("services not configured")
	}

	day := domain.Weekday(strings.ToLower(args[0]))
	meal := domain.MealType(strings.ToLower(args[1]))
	if !day.IsValid() {
		return fmt.Errorf("unknown day %q", args[0])
	}
	if !meal.IsValid() {
		return fmt.Errorf("unknown meal type %q", args[1])
	}

	id, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[2])
	}

	recipe, err := discoveryService.GetRecipe(context.Background(), id)
	if err != nil {
		return fmt.Errorf("fetching recipe: %w", err)
	}

	if !planService.AddMeal(day, meal, *recipe) {
		return fmt.Errorf("could not place %s on %s %s", recipe.Title, day, meal)
	}
	cmd.Printf("Planned %s for %s %s.\n", recipe.Title, day, meal)
	return nil
}

func runPlanRemove(cmd *cobra.Command, args []string) error {
	if planService == nil {
		return errors.New("meal plan service not configured")
	}

	day := domain.Weekday(strings.ToLower(args[0]))
	meal := domain.MealType(strings.ToLower(args[1]))
	if !planService.RemoveMeal(day, meal) {
		return fmt.Errorf("unknown slot %q %q", args[0], args[1])
	}
	cmd.Printf("Cleared %s %s.\n", day, meal)
	return nil
}

func runPlanClear(cmd *cobra.Command, _ []string) error {
	if planService == nil {
		return errors.New("meal plan service not configured")
	}

	planService.Clear()
	cmd.Println("Meal plan cleared.")
	return nil
}
