package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
)

// SearchRecipesInput is the input schema for the search_recipes tool.
type SearchRecipesInput struct {
	Query        string `json:"query" jsonschema:"free-text recipe search query"`
	Diet         string `json:"diet,omitempty" jsonschema:"diet filter such as vegetarian or vegan"`
	Cuisine      string `json:"cuisine,omitempty" jsonschema:"cuisine filter such as italian or thai"`
	MaxReadyTime int    `json:"max_ready_time,omitempty" jsonschema:"maximum ready time in minutes"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchRecipesOutput is the output schema for the search_recipes tool.
type SearchRecipesOutput struct {
	Results []RecipeSummaryOutput `json:"results"`
	Count   int                   `json:"count"`
}

// RecipeSummaryOutput represents a single search result.
type RecipeSummaryOutput struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ReadyInMinutes int    `json:"ready_in_minutes,omitempty"`
}

// GetRecipeInput is the input schema for the get_recipe tool.
type GetRecipeInput struct {
	ID int `json:"id" jsonschema:"catalog id of the recipe"`
}

// GetRecipeOutput is the output schema for the get_recipe tool.
type GetRecipeOutput struct {
	Recipe    domain.Recipe           `json:"recipe"`
	Nutrition domain.NutritionSummary `json:"nutrition"`
}

// MealSlotOutput is one occupied meal plan slot.
type MealSlotOutput struct {
	Day      string `json:"day"`
	Meal     string `json:"meal"`
	RecipeID int    `json:"recipe_id"`
	Title    string `json:"title"`
}

// GetMealPlanOutput is the output schema for the get_meal_plan tool.
type GetMealPlanOutput struct {
	Meals []MealSlotOutput `json:"meals"`
}

// AddMealInput is the input schema for the add_meal tool.
type AddMealInput struct {
	Day      string `json:"day" jsonschema:"day of week, monday through sunday"`
	Meal     string `json:"meal" jsonschema:"meal type: breakfast, lunch or dinner"`
	RecipeID int    `json:"recipe_id" jsonschema:"catalog id of the recipe to plan"`
}

// AddMealOutput is the output schema for the add_meal tool.
type AddMealOutput struct {
	Planned bool   `json:"planned"`
	Title   string `json:"title,omitempty"`
}

// GetShoppingListOutput is the output schema for the get_shopping_list tool.
type GetShoppingListOutput struct {
	Items []domain.ShoppingItem `json:"items"`
}

// GenerateShoppingListInput is the input schema for the generate_shopping_list tool.
type GenerateShoppingListInput struct {
	Save bool `json:"save,omitempty" jsonschema:"persist the generated entries to the shopping list"`
}

// GenerateShoppingListOutput is the output schema for the generate_shopping_list tool.
type GenerateShoppingListOutput struct {
	Entries []domain.ShoppingListEntry `json:"entries"`
	Added   int                        `json:"added,omitempty"`
}

// NutritionSummaryInput is the input schema for the nutrition_summary tool.
type NutritionSummaryInput struct {
	Day string `json:"day,omitempty" jsonschema:"day of week for daily totals; empty for the weekly per-day average"`
}

// NutritionSummaryOutput is the output schema for the nutrition_summary tool.
type NutritionSummaryOutput struct {
	Scope   string                  `json:"scope"`
	Summary domain.NutritionSummary `json:"summary"`
}

// ListFavoritesOutput is the output schema for the list_favorites tool.
type ListFavoritesOutput struct {
	Favorites []RecipeSummaryOutput `json:"favorites"`
	Count     int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recipes",
		Description: "Search the recipe catalog by free text with optional diet, cuisine and time filters",
	}, s.handleSearchRecipes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe",
		Description: "Fetch full recipe details including ingredients and per-serving nutrition",
	}, s.handleGetRecipe)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_meal_plan",
		Description: "List the occupied slots of the weekly meal plan",
	}, s.handleGetMealPlan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_meal",
		Description: "Place a catalog recipe in a meal plan slot",
	}, s.handleAddMeal)

	if s.ports.Shopping != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_shopping_list",
			Description: "List the current shopping items",
		}, s.handleGetShoppingList)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "generate_shopping_list",
			Description: "Derive a categorised shopping list from the meal plan, optionally persisting it",
		}, s.handleGenerateShoppingList)
	}

	if s.ports.Nutrition != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "nutrition_summary",
			Description: "Nutrition totals for one plan day or the weekly per-day average",
		}, s.handleNutritionSummary)
	}

	if s.ports.Favorites != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_favorites",
			Description: "List saved favorite recipes",
		}, s.handleListFavorites)
	}
}

func (s *Server) handleSearchRecipes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchRecipesInput,
) (*mcp.CallToolResult, SearchRecipesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := domain.RecipeQuery{
		Text:         input.Query,
		Diet:         input.Diet,
		Cuisine:      input.Cuisine,
		MaxReadyTime: input.MaxReadyTime,
		Limit:        limit,
	}
	results, err := s.ports.Discovery.Search(ctx, query)
	if err != nil {
		return nil, SearchRecipesOutput{}, err
	}

	output := SearchRecipesOutput{
		Results: make([]RecipeSummaryOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = RecipeSummaryOutput{
			ID:             results[i].ID,
			Title:          results[i].Title,
			ReadyInMinutes: results[i].ReadyInMinutes,
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecipeInput,
) (*mcp.CallToolResult, GetRecipeOutput, error) {
	recipe, err := s.ports.Discovery.GetRecipe(ctx, input.ID)
	if err != nil {
		return nil, GetRecipeOutput{}, err
	}
	return nil, GetRecipeOutput{
		Recipe:    *recipe,
		Nutrition: domain.ExtractNutrition(recipe),
	}, nil
}

func (s *Server) handleGetMealPlan(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, GetMealPlanOutput, error) {
	planned := s.ports.MealPlan.AllMeals()

	output := GetMealPlanOutput{Meals: make([]MealSlotOutput, len(planned))}
	for i := range planned {
		output.Meals[i] = MealSlotOutput{
			Day:      planned[i].Day.String(),
			Meal:     planned[i].MealType.String(),
			RecipeID: planned[i].Recipe.ID,
			Title:    planned[i].Recipe.Title,
		}
	}
	return nil, output, nil
}

func (s *Server) handleAddMeal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddMealInput,
) (*mcp.CallToolResult, AddMealOutput, error) {
	day := domain.Weekday(strings.ToLower(input.Day))
	meal := domain.MealType(strings.ToLower(input.Meal))
	if !day.IsValid() {
		return nil, AddMealOutput{}, fmt.Errorf("unknown day %q", input.Day)
	}
	if !meal.IsValid() {
		return nil, AddMealOutput{}, fmt.Errorf("unknown meal type %q", input.Meal)
	}

	recipe, err := s.ports.Discovery.GetRecipe(ctx, input.RecipeID)
	if err != nil {
		return nil, AddMealOutput{}, err
	}

	planned := s.ports.MealPlan.AddMeal(day, meal, *recipe)
	return nil, AddMealOutput{Planned: planned, Title: recipe.Title}, nil
}

func (s *Server) handleGetShoppingList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, GetShoppingListOutput, error) {
	return nil, GetShoppingListOutput{Items: s.ports.Shopping.List()}, nil
}

func (s *Server) handleGenerateShoppingList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GenerateShoppingListInput,
) (*mcp.CallToolResult, GenerateShoppingListOutput, error) {
	entries := s.ports.Shopping.GenerateFromMealPlan()
	output := GenerateShoppingListOutput{Entries: entries}
	if input.Save {
		output.Added = s.ports.Shopping.Import(entries)
	}
	return nil, output, nil
}

func (s *Server) handleNutritionSummary(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NutritionSummaryInput,
) (*mcp.CallToolResult, NutritionSummaryOutput, error) {
	if input.Day == "" {
		return nil, NutritionSummaryOutput{
			Scope:   "weekly_average",
			Summary: s.ports.Nutrition.WeeklyAverage(),
		}, nil
	}

	day := domain.Weekday(strings.ToLower(input.Day))
	summary, ok := s.ports.Nutrition.Daily(day)
	if !ok {
		return nil, NutritionSummaryOutput{}, fmt.Errorf("unknown day %q", input.Day)
	}
	return nil, NutritionSummaryOutput{Scope: day.String(), Summary: summary}, nil
}

func (s *Server) handleListFavorites(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListFavoritesOutput, error) {
	favorites := s.ports.Favorites.List()

	output := ListFavoritesOutput{
		Favorites: make([]RecipeSummaryOutput, len(favorites)),
		Count:     len(favorites),
	}
	for i := range favorites {
		output.Favorites[i] = RecipeSummaryOutput{
			ID:             favorites[i].ID,
			Title:          favorites[i].Title,
			ReadyInMinutes: favorites[i].ReadyInMinutes,
		}
	}
	return nil, output, nil
}
