package menu

import "errors"

var (
	ErrInvalidChannel      = errors.New("invalid channel: expected dine-in or online")
	ErrInvalidScope        = errors.New("invalid scope: expected all or location")
	ErrInvalidOverlayState = errors.New("invalid overlay state: expected on, off or removed")
	ErrLocationRequired    = errors.New("location id is required for location scope")
	ErrUnexpectedLocation  = errors.New("location id is only allowed for location scope")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrTenantRequired      = errors.New("tenant id is required")
)
