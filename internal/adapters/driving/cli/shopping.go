package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

var (
	shoppingCategory string
	shoppingSave     bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the shopping list",
	RunE:  runShoppingList,
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an item to the shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingAdd,
}

var shoppingRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an item from the shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingRemove,
}

var shoppingToggleCmd = &cobra.Command{
	Use:   "toggle [id]",
	Short: "Check or uncheck an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runShoppingToggle,
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all shopping items",
	Args:  cobra.NoArgs,
	RunE:  runShoppingClear,
}

var shoppingGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive a shopping list from the meal plan",
	Long: `Aggregates the ingredients of every planned meal into a categorised
shopping list. With --save the generated entries are added to the
persisted list; names already on the list are skipped.`,
	Args: cobra.NoArgs,
	RunE: runShoppingGenerate,
}

func init() {
	shoppingAddCmd.Flags().StringVarP(&shoppingCategory, "category", "c", "", "item category (produce, meat, dairy, grains, spices, pantry, other)")
	shoppingGenerateCmd.Flags().BoolVar(&shoppingSave, "save", false, "add generated entries to the persisted list")
	shoppingCmd.AddCommand(shoppingAddCmd)
	shoppingCmd.AddCommand(shoppingRemoveCmd)
	shoppingCmd.AddCommand(shoppingToggleCmd)
	shoppingCmd.AddCommand(shoppingClearCmd)
	shoppingCmd.AddCommand(shoppingGenerateCmd)
	rootCmd.AddCommand(shoppingCmd)
}

func runShoppingList(cmd *cobra.Command, _ []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	items := shoppingService.List()
	if len(items) == 0 {
		cmd.Println("Shopping list is empty.")
		return nil
	}

	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		cmd.Printf("  [%s] %-24s %-8s %s\n", mark, item.Name, item.Category, item.ID)
	}
	return nil
}

func runShoppingAdd(cmd *cobra.Command, args []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	if !shoppingService.Add(args[0], domain.Category(shoppingCategory)) {
		cmd.Printf("%s is already on the list.\n", args[0])
		return nil
	}
	cmd.Printf("Added %s.\n", args[0])
	return nil
}

func runShoppingRemove(cmd *cobra.Command, args []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	shoppingService.Remove(args[0])
	cmd.Println("Removed.")
	return nil
}

func runShoppingToggle(cmd *cobra.Command, args []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	if !shoppingService.Toggle(args[0]) {
		return fmt.Errorf("no shopping item with id %q", args[0])
	}
	cmd.Println("Toggled.")
	return nil
}

func runShoppingClear(cmd *cobra.Command, _ []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	shoppingService.Clear()
	cmd.Println("Shopping list cleared.")
	return nil
}

func runShoppingGenerate(cmd *cobra.Command, _ []string) error {
	if shoppingService == nil {
		return errors.New("shopping service not configured")
	}

	entries := shoppingService.GenerateFromMealPlan()
	if len(entries) == 0 {
		cmd.Println("Nothing to generate: the meal plan is empty.")
		return nil
	}

	for _, entry := range entries {
		if entry.Amount > 0 {
			cmd.Printf("  %-24s %-8s %g %s\n", entry.Name, entry.Category, entry.Amount, entry.Unit)
		} else {
			cmd.Printf("  %-24s %-8s\n", entry.Name, entry.Category)
		}
	}

	if shoppingSave {
		added := shoppingService.Import(entries)
		cmd.Printf("\nAdded %d item(s) to the shopping list.\n", added)
	}
	return nil
}
