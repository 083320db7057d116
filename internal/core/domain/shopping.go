package domain

import "strings"

// Category is a coarse grocery classification for shopping items.
type Category string

// Grocery categories, in classification priority order. Some keywords
// could plausibly match more than one category, so CategorizeIngredient
// checks them in exactly this order and the first match wins.
const (
	CategoryProduce Category = "produce"
	CategoryMeat    Category = "meat"
	CategoryDairy   Category = "dairy"
	CategoryGrains  Category = "grains"
	CategorySpices  Category = "spices"
	CategoryPantry  Category = "pantry"
	CategoryOther   Category = "other"
)

// AllCategories returns the grocery categories in priority order,
// with the "other" fallback last.
func AllCategories() []Category {
	return []Category{
		CategoryProduce,
		CategoryMeat,
		CategoryDairy,
		CategoryGrains,
		CategorySpices,
		CategoryPantry,
		CategoryOther,
	}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProduce, CategoryMeat, CategoryDairy, CategoryGrains,
		CategorySpices, CategoryPantry, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// ShoppingItem is a named, categorised, checkable shopping-list entry.
type ShoppingItem struct {
	// ID is unique within the list, assigned at insertion. IDs embed the
	// insertion timestamp so they sort by insertion time.
	ID string `json:"id"`

	// Name is the item name. Uniqueness within the list is enforced
	// case-insensitively on this field.
	Name string `json:"name"`

	// Category is the grocery classification, "other" when unknown.
	Category Category `json:"category"`

	// Checked marks the item as picked up.
	Checked bool `json:"checked"`

	// AddedAt is when the item was added, in epoch milliseconds.
	AddedAt int64 `json:"addedAt"`
}

// categoryRule pairs an ordered keyword set with its category.
type categoryRule struct {
	category Category
	keywords []string
}

// Categorisation keywords. This is a best-effort heuristic over free-text
// ingredient names and aisle hints, not an exhaustive classifier. Herbs
// sold fresh (basil, cilantro, parsley, mint) sit under produce, which is
// checked before spices.
var categoryRules = []categoryRule{
	{CategoryProduce, []string{
		"apple", "banana", "berry", "berries", "orange", "lemon", "lime",
		"grape", "melon", "peach", "pear", "avocado", "tomato", "onion",
		"garlic", "lettuce", "spinach", "kale", "cabbage", "carrot",
		"celery", "broccoli", "cauliflower", "pepper", "cucumber",
		"zucchini", "eggplant", "mushroom", "potato", "corn", "basil",
		"cilantro", "parsley", "mint", "fresh",
	}},
	{CategoryMeat, []string{
		"chicken", "beef", "pork", "turkey", "lamb", "bacon", "sausage",
		"ham", "steak", "fish", "salmon", "tuna", "shrimp", "prawn",
		"ground meat",
	}},
	{CategoryDairy, []string{
		"milk", "cheese", "butter", "yogurt", "yoghurt", "cream", "egg",
		"mozzarella", "parmesan", "cheddar", "feta", "ricotta",
	}},
	{CategoryGrains, []string{
		"bread", "rice", "pasta", "spaghetti", "noodle", "flour", "oat",
		"quinoa", "tortilla", "cereal", "barley", "couscous", "cracker",
	}},
	{CategorySpices, []string{
		"salt", "pepper", "cumin", "paprika", "cinnamon", "oregano",
		"thyme", "rosemary", "chili powder", "curry", "turmeric",
		"ginger", "nutmeg", "vanilla", "sage", "spice", "seasoning",
	}},
	{CategoryPantry, []string{
		"oil", "vinegar", "sugar", "honey", "sauce", "broth", "stock",
		"beans", "lentil", "chickpea", "canned", "ketchup", "mustard",
		"mayonnaise", "soy", "syrup", "peanut butter", "jam", "nut",
	}},
}

// CategorizeIngredient maps an ingredient name or aisle hint to a grocery
// category. Matching is case-insensitive substring search over the rules
// in priority order (produce, meat, dairy, grains, spices, pantry); the
// first matching keyword wins. Unmatched input classifies as "other".
func CategorizeIngredient(aisleOrName string) Category {
	s := strings.ToLower(aisleOrName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
