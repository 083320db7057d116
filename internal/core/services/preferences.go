package services

import (
	"time"

	"github.com/plateful-labs/plateful-cli/internal/core/domain"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/core/ports/driving"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// PreferencesService manages the single per-profile preferences record.
//
// Saving trusts its input: numeric goal ranges (domain.GoalRanges) are a
// caller-side concern for the form-handling surface, and are not enforced
// here.
type PreferencesService struct {
	store driven.KeyValueStore
	now   func() time.Time
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(store driven.KeyValueStore) *PreferencesService {
	return &PreferencesService{
		store: store,
		now:   time.Now,
	}
}

// Get returns the stored preferences, or the documented defaults when
// none are stored. The defaults are never written back by Get.
func (s *PreferencesService) Get() domain.UserPreferences {
	var prefs domain.UserPreferences
	if !s.store.Load(keyUserPreferences, &prefs) {
		return domain.DefaultUserPreferences()
	}
	prefs.Normalize()
	return prefs
}

// Save overwrites the preferences record unconditionally, collapsing
// duplicate tags and stamping LastUpdated.
func (s *PreferencesService) Save(prefs domain.UserPreferences) {
	prefs.Normalize()
	prefs.LastUpdated = s.now().UnixMilli()
	s.store.Save(keyUserPreferences, prefs)
}

// Update performs a read-modify-write of a single field, addressed by its
// JSON field name. Returns false for an unrecognised key or a value of
// the wrong type.
func (s *PreferencesService) Update(key string, value any) bool {
	prefs := s.Get()

	switch key {
	case "diets":
		tags, ok := value.([]string)
		if !ok {
			return false
		}
		prefs.Diets = tags
	case "allergies":
		tags, ok := value.([]string)
		if !ok {
			return false
		}
		prefs.Allergies = tags
	case "cuisines":
		tags, ok := value.([]string)
		if !ok {
			return false
		}
		prefs.Cuisines = tags
	case "calorieGoal", "proteinGoal", "carbsGoal", "fatGoal":
		goal, ok := value.(int)
		if !ok {
			return false
		}
		switch key {
		case "calorieGoal":
			prefs.CalorieGoal = goal
		case "proteinGoal":
			prefs.ProteinGoal = goal
		case "carbsGoal":
			prefs.CarbsGoal = goal
		case "fatGoal":
			prefs.FatGoal = goal
		}
	case "maxCookingTime":
		limit, ok := value.(domain.CookingTimeLimit)
		if !ok {
			str, strOK := value.(string)
			if !strOK {
				return false
			}
			limit = domain.CookingTimeLimit(str)
		}
		prefs.MaxCookingTime = limit
	default:
		logger.Debug("unknown preference key %q", key)
		return false
	}

	s.Save(prefs)
	return true
}
