package services

import (
	"time"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure FavoritesService implements the interface.
var _ driving.FavoritesService = (*FavoritesService)(nil)

// FavoritesService manages the saved-recipes collection.
type FavoritesService struct {
	store driven.KeyValueStore
	now   func() time.Time
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(store driven.KeyValueStore) *FavoritesService {
	return &FavoritesService{
		store: store,
		now:   time.Now,
	}
}

// List returns favorites in insertion order.
func (s *FavoritesService) List() []domain.Favorite {
	var favorites []domain.Favorite
	s.store.Load(keyFavorites, &favorites)
	return favorites
}

// Add saves a recipe snapshot with an added-at timestamp. Returns false
// without mutating the collection if the recipe id is already saved.
func (s *FavoritesService) Add(recipe domain.Recipe) bool {
	favorites := s.List()
	for _, fav := range favorites {
		if fav.ID == recipe.ID {
			logger.Debug("favorite %d already saved", recipe.ID)
			return false
		}
	}

	favorites = append(favorites, domain.Favorite{
		Recipe:  recipe,
		AddedAt: s.now().UnixMilli(),
	})
	return s.store.Save(keyFavorites, favorites)
}

// Remove deletes the favorite with the given recipe id. Removing an
// absent id is a no-op, so Remove is idempotent.
func (s *FavoritesService) Remove(id int) {
	favorites := s.List()
	kept := favorites[:0]
	for _, fav := range favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if len(kept) == len(favorites) {
		return
	}
	s.store.Save(keyFavorites, kept)
}

// Contains reports whether the recipe id is saved.
func (s *FavoritesService) Contains(id int) bool {
	for _, fav := range s.List() {
		if fav.ID == id {
			return true
		}
	}
	return false
}

// Clear resets the collection to empty.
func (s *FavoritesService) Clear() {
	s.store.Save(keyFavorites, []domain.Favorite{})
}
