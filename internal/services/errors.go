// internal/services/errors.go
package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses with errors.Is; anything else is treated as an internal
// failure and logged server-side only.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRating      = errors.New("rating score must be between 1 and 5")
	ErrInvalidFilePayload = errors.New("invalid or missing file payload")
	ErrUploadFailed       = errors.New("file upload failed")
)
