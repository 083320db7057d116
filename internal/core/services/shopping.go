package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure ShoppingService implements the interface.
var _ driving.ShoppingService = (*ShoppingService)(nil)

// ShoppingService manages the persisted shopping list and derives
// shopping lists from the meal plan.
type ShoppingService struct {
	store driven.KeyValueStore
	plan  driving.MealPlanService
	now   func() time.Time
	newID func(t time.Time) string
}

// NewShoppingService creates a new shopping list service. The meal plan
// service is read (never written) when generating a list from the plan.
func NewShoppingService(store driven.KeyValueStore, plan driving.MealPlanService) *ShoppingService {
	return &ShoppingService{
		store: store,
		plan:  plan,
		now:   time.Now,
		newID: newItemID,
	}
}

// newItemID builds an item id from the insertion timestamp plus a uuid
// fragment: ids sort by insertion time and stay unique within the same
// millisecond.
func newItemID(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), uuid.NewString()[:8])
}

// List returns shopping items in insertion order.
func (s *ShoppingService) List() []domain.ShoppingItem {
	var items []domain.ShoppingItem
	s.store.Load(keyShoppingList, &items)
	return items
}

// Add inserts a named item. Returns false and leaves the existing entry
// untouched when the name is already on the list (case-insensitive).
func (s *ShoppingService) Add(name string, category domain.Category) bool {
	items := s.List()
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			logger.Debug("shopping item %q already on the list", name)
			return false
		}
	}

	if !category.IsValid() {
		category = domain.CategoryOther
	}

	now := s.now()
	items = append(items, domain.ShoppingItem{
		ID:       s.newID(now),
		Name:     name,
		Category: category,
		Checked:  false,
		AddedAt:  now.UnixMilli(),
	})
	return s.store.Save(keyShoppingList, items)
}

// Remove deletes the item with the given id. Absent ids are a no-op.
func (s *ShoppingService) Remove(id string) {
	items := s.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return
	}
	s.store.Save(keyShoppingList, kept)
}

// Toggle flips an item's checked state and persists. Returns false if
// the id is not found.
func (s *ShoppingService) Toggle(id string) bool {
	items := s.List()
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return s.store.Save(keyShoppingList, items)
		}
	}
	return false
}

// Clear resets the list to empty.
func (s *ShoppingService) Clear() {
	s.store.Save(keyShoppingList, []domain.ShoppingItem{})
}

// GenerateFromMealPlan computes a shopping list from the current meal
// plan. The result is not persisted; use Import for that.
func (s *ShoppingService) GenerateFromMealPlan() []domain.ShoppingListEntry {
	return domain.BuildShoppingList(s.plan.Get())
}

// Import persists generated entries as shopping items through Add,
// keeping the case-insensitive name uniqueness rule. Returns the number
// of items newly added.
func (s *ShoppingService) Import(entries []domain.ShoppingListEntry) int {
	added := 0
	for _, entry := range entries {
		if s.Add(entry.Name, entry.Category) {
			added++
		}
	}
	return added
}
