package domain

import "errors"

// Domain errors (no external dependencies). Repositories translate driver
// failures into these sentinels so callers can branch without knowing the backend.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrDuplicateOrder    = errors.New("order already recorded")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrPlatformUnknown   = errors.New("unknown platform")
	ErrPlatformOffline   = errors.New("platform not connected")
)
