package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage saved recipes",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add [recipe-id]",
	Short: "Save a recipe to favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [recipe-id]",
	Short: "Remove a recipe from favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all favorites",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesClear,
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	if favoritesService == nil {
		return errors.New("favorites service not configured")
	}

	favorites := favoritesService.List()
	if len(favorites) == 0 {
		cmd.Println("No favorites saved.")
		return nil
	}

	for i, fav := range favorites {
		added := time.UnixMilli(fav.AddedAt).Format("2006-01-02")
		cmd.Printf("  [%d] %s (id %d, added %s)\n", i+1, fav.Title, fav.ID, added)
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	if favoritesService == nil || discoveryService == nil {
		return errors.New("services not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	recipe, err := discoveryService.GetRecipe(context.Background(), id)
	if err != nil {
		return fmt.Errorf("fetching recipe: %w", err)
	}

	if !favoritesService.Add(*recipe) {
		cmd.Printf("%s is already a favorite.\n", recipe.Title)
		return nil
	}
	cmd.Printf("Saved %s to favorites.\n", recipe.Title)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	if favoritesService == nil {
		return errors.New("favorites service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid recipe id %q", args[0])
	}

	favoritesService.Remove(id)
	cmd.Printf("Removed recipe %d from favorites.\n", id)
	return nil
}

func runFavoritesClear(cmd *cobra.Command, _ []string) error {
	if favoritesService == nil {
		return errors.New("favorites service not configured")
	}

	favoritesService.Clear()
	cmd.Println("Favorites cleared.")
	return nil
}
