package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent searches",
	RunE:  runRecentList,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent-search history",
	Args:  cobra.NoArgs,
	RunE:  runRecentClear,
}

func init() {
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	if searchesService == nil {
		return errors.New("recent searches service not configured")
	}

	queries := searchesService.List()
	if len(queries) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for i, query := range queries {
		cmd.Printf("  [%d] %s\n", i+1, query)
	}
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	if searchesService == nil {
		return errors.New("recent searches service not configured")
	}

	searchesService.Clear()
	cmd.Println("Recent searches cleared.")
	return nil
}
