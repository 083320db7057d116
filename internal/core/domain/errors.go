package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Note that expected
// rejections inside the domain store (duplicate favorite, invalid day)
// are reported as boolean returns, not errors; these sentinels cover the
// surfaces that do return errors (catalog access, driving adapters).
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogUnavailable indicates the recipe catalog is not configured
	// or unreachable. Search and recipe detail lookups are disabled.
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")

	// ErrRateLimited indicates the catalog API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
