// Package cli provides the cobra command surface over the driving ports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/catalog/spoonacular"
	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/config/file"
	"github.com/plateful-labs/plateful-cli/internal/adapters/driven/storage/sqlite"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
	"github.com/plateful-labs/plateful-cli/internal/core/services"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
)

// Services wired by initServices and consumed by the commands.
var (
	appConfig          *file.Config
	kvStore            *sqlite.KVStore
	favoritesService   driving.FavoritesService
	planService        driving.MealPlanService
	shoppingService    driving.ShoppingService
	preferencesService driving.PreferencesService
	searchesService    driving.RecentSearchesService
	nutritionService   driving.NutritionService
	discoveryService   driving.DiscoveryService
)

var rootCmd = &cobra.Command{
	Use:   "plateful",
	Short: "Plan meals, track nutrition, build shopping lists",
	Long: `Plateful is a local-first meal planner. Search a recipe catalog,
save favorites, fill a weekly meal plan, derive a shopping list from it,
and track nutrition against your goals. Everything is stored locally.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if kvStore != nil {
			kvStore.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.plateful)")
}

// initServices loads config, opens local storage and builds the service
// graph. Idempotent so tests can pre-wire fakes.
func initServices() error {
	if kvStore != nil || favoritesService != nil {
		return nil
	}

	cfg, err := file.Load(configDirFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	store, err := sqlite.NewKVStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("opening local storage: %w", err)
	}
	kvStore = store

	plan := services.NewMealPlanService(store)
	prefs := services.NewPreferencesService(store)
	searches := services.NewRecentSearchesService(store)

	favoritesService = services.NewFavoritesService(store)
	planService = plan
	shoppingService = services.NewShoppingService(store, plan)
	preferencesService = prefs
	searchesService = searches
	nutritionService = services.NewNutritionService(plan, prefs)

	catalog := spoonacular.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.CacheTTL())
	discoveryService = services.NewDiscoveryService(catalog, searches, prefs)

	logger.Debug("services initialised, data at %s", store.Path())
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
