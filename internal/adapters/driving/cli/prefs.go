package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage dietary preferences and nutrition goals",
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one preference field",
	Long: `Sets a single preference field. Keys:

  diets, allergies, cuisines    comma-separated tags
  calorieGoal                   1000-5000 kcal
  proteinGoal                   10-300 g
  carbsGoal                     50-500 g
  fatGoal                       10-200 g
  maxCookingTime                15, 30, 45, 60 or "" for no limit`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset preferences to the defaults",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

var prefsAPIKeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Store the recipe catalog API key",
	Args:  cobra.NoArgs,
	RunE:  runPrefsAPIKey,
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	prefsCmd.AddCommand(prefsAPIKeyCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	prefs := preferencesService.Get()
	cmd.Printf("Diets:            %s\n", joinOrNone(prefs.Diets))
	cmd.Printf("Allergies:        %s\n", joinOrNone(prefs.Allergies))
	cmd.Printf("Cuisines:         %s\n", joinOrNone(prefs.Cuisines))
	cmd.Printf("Calorie goal:     %d kcal\n", prefs.CalorieGoal)
	cmd.Printf("Protein goal:     %d g\n", prefs.ProteinGoal)
	cmd.Printf("Carbs goal:       %d g\n", prefs.CarbsGoal)
	cmd.Printf("Fat goal:         %d g\n", prefs.FatGoal)
	cmd.Printf("Max cooking time: %s\n", prefs.MaxCookingTime.Description())
	return nil
}

func joinOrNone(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	key, raw := args[0], args[1]

	var value any
	switch key {
	case "diets", "allergies", "cuisines":
		value = splitTags(raw)
	case "calorieGoal", "proteinGoal", "carbsGoal", "fatGoal":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s needs a number, got %q", key, raw)
		}
		r := domain.GoalRanges()[key]
		if !r.Contains(n) {
			return fmt.Errorf("%s must be between %d and %d", key, r.Min, r.Max)
		}
		value = n
	case "maxCookingTime":
		limit := domain.CookingTimeLimit(raw)
		if !limit.IsValid() {
			return fmt.Errorf("maxCookingTime must be 15, 30, 45, 60 or empty")
		}
		value = limit
	default:
		return fmt.Errorf("unknown preference key %q", key)
	}

	if !preferencesService.Update(key, value) {
		return fmt.Errorf("could not update %s", key)
	}
	cmd.Printf("Updated %s.\n", key)
	return nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func runPrefsReset(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	preferencesService.Save(domain.DefaultUserPreferences())
	cmd.Println("Preferences reset to defaults.")
	return nil
}

func runPrefsAPIKey(cmd *cobra.Command, _ []string) error {
	if appConfig == nil {
		return errors.New("config not loaded")
	}

	cmd.Print("API key (input hidden): ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}
	if len(key) == 0 {
		return errors.New("API key cannot be empty")
	}

	appConfig.Catalog.APIKey = string(key)
	if err := appConfig.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("API key saved to %s.\n", appConfig.Path())
	return nil
}
