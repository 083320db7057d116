package driving

import "github.com/plateful-labs/plateful-cli/internal/core/domain"

// PreferencesService manages the single per-profile preferences record.
type PreferencesService interface {
	// Get returns the stored preferences, or the documented defaults when
	// none are stored.
	Get() domain.UserPreferences

	// Save overwrites the preferences record unconditionally, collapsing
	// duplicate tags and stamping LastUpdated. The store trusts its
	// input: numeric goal ranges (domain.GoalRanges) are validated by the
	// calling surface before Save, not here.
	Save(prefs domain.UserPreferences)

	// Update performs a read-modify-write of a single field, addressed by
	// its JSON field name (e.g. "calorieGoal", "diets"). Returns false
	// for an unrecognised key or a value of the wrong type.
	Update(key string, value any) bool
}
