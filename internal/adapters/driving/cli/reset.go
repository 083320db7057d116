package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/core/services"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all locally stored data",
	Long: `Erases every locally stored record: favorites, the meal plan, the
shopping list, preferences and the recent-search history. Requires
--force.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm erasing all local data")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if kvStore == nil {
		return errors.New("local storage not configured")
	}
	if !resetForce {
		return errors.New("refusing to erase local data without --force")
	}

	kvStore.ClearAll(services.KnownStorageKeys()...)
	cmd.Println("All local data erased.")
	return nil
}
