package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

var nutritionProgress bool

var nutritionCmd = &cobra.Command{
	Use:   "nutrition [day]",
	Short: "Show nutrition totals for the meal plan",
	Long: `Shows nutrition totals derived from the meal plan. With a day argument
(monday..sunday) the totals are for that day; without one the weekly
per-day average is shown. --progress compares a day against your goals.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNutrition,
}

func init() {
	nutritionCmd.Flags().BoolVar(&nutritionProgress, "progress", false, "show progress against daily goals")
	rootCmd.AddCommand(nutritionCmd)
}

func runNutrition(cmd *cobra.Command, args []string) error {
	if nutritionService == nil {
		return errors.New("nutrition service not configured")
	}

	if len(args) == 0 {
		avg := nutritionService.WeeklyAverage()
		cmd.Println("Weekly per-day average:")
		outputNutrition(cmd, avg)
		return nil
	}

	day := domain.Weekday(strings.ToLower(args[0]))

	if nutritionProgress {
		progress, ok := nutritionService.DailyProgress(day)
		if !ok {
			return fmt.Errorf("unknown day %q", args[0])
		}
		cmd.Printf("%s against goals:\n", titleCase(day.String()))
		for _, nutrient := range []string{"calories", "protein", "carbs", "fat"} {
			p := progress[nutrient]
			cmd.Printf("  %-10s %4d / %4d (%d%%)\n", nutrient, p.Consumed, p.Goal, p.Percent)
		}
		return nil
	}

	total, ok := nutritionService.Daily(day)
	if !ok {
		return fmt.Errorf("unknown day %q", args[0])
	}
	cmd.Printf("%s totals:\n", titleCase(day.String()))
	outputNutrition(cmd, total)
	return nil
}

func outputNutrition(cmd *cobra.Command, n domain.NutritionSummary) {
	cmd.Printf("  calories   %d kcal\n", n.Calories)
	cmd.Printf("  protein    %d g\n", n.Protein)
	cmd.Printf("  carbs      %d g\n", n.Carbs)
	cmd.Printf("  fat        %d g\n", n.Fat)
}
