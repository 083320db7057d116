package domain

// Recipe is a snapshot of a catalog recipe. The catalog owns the schema;
// this layer only reads a handful of fields and otherwise treats the
// snapshot as immutable once stored.
type Recipe struct {
	// ID is the unique identifier assigned by the external catalog.
	ID int `json:"id"`

	// Title is the display name of the recipe.
	Title string `json:"title"`

	// Image is a URL or reference to the recipe image.
	Image string `json:"image,omitempty"`

	// Servings is the number of servings the recipe yields.
	Servings int `json:"servings,omitempty"`

	// ReadyInMinutes is the total preparation plus cooking time.
	ReadyInMinutes int `json:"readyInMinutes,omitempty"`

	// Diet flags as reported by the catalog.
	Vegetarian  bool `json:"vegetarian,omitempty"`
	Vegan       bool `json:"vegan,omitempty"`
	GlutenFree  bool `json:"glutenFree,omitempty"`
	DairyFree   bool `json:"dairyFree,omitempty"`
	VeryHealthy bool `json:"veryHealthy,omitempty"`

	// Nutrition is the per-serving nutrition payload. Nil when the catalog
	// response did not include nutrition data.
	Nutrition *Nutrition `json:"nutrition,omitempty"`

	// Ingredients lists the recipe's ingredients with amounts.
	Ingredients []Ingredient `json:"extendedIngredients,omitempty"`
}

// Nutrition is the catalog's nutrition payload: a flat list of named
// nutrient entries.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is a single named nutrient amount.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// Ingredient is a single recipe ingredient.
type Ingredient struct {
	// Name is the ingredient name as reported by the catalog.
	Name string `json:"name"`

	// Aisle is an optional grocery-aisle hint from the catalog.
	Aisle string `json:"aisle,omitempty"`

	// Amount is the quantity in Unit. Units are catalog-provided free text
	// and are not normalised by this layer.
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// RecipeSummary is the lightweight shape returned by catalog search.
// A full Recipe snapshot requires a detail fetch by ID.
type RecipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes,omitempty"`
}

// RecipeQuery describes a catalog search request.
type RecipeQuery struct {
	// Text is the free-text query.
	Text string

	// Diet restricts results to a diet (e.g. "vegetarian"). Empty means
	// no restriction.
	Diet string

	// Cuisine restricts results to a cuisine (e.g. "italian").
	Cuisine string

	// MaxReadyTime restricts results to recipes ready within this many
	// minutes. Zero means no limit.
	MaxReadyTime int

	// Limit is the maximum number of results. Zero means the catalog
	// adapter's default.
	Limit int
}
