package domain

// Favorite is a saved recipe snapshot. The embedded Recipe is stored as-is
// at the time the favorite was added; later catalog edits do not propagate.
type Favorite struct {
	Recipe

	// AddedAt is when the favorite was saved, in epoch milliseconds.
	AddedAt int64 `json:"addedAt"`
}
