package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Range errors
	ErrMsgInvalidRange = "invalid level range"

	// Lookup errors
	ErrMsgUnknownKey         = "unknown key"
	ErrMsgUnknownTier        = "unknown potion tier"
	ErrMsgUnknownRecipe      = "unknown recipe"
	ErrMsgUnknownSlot        = "unknown equipment slot"
	ErrMsgUnknownCrystalType = "unknown crystal type"
	ErrMsgUnknownTab         = "unknown tab"

	// Game data errors
	ErrMsgInvalidGameData = "invalid game data"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgStoreUnavailable = "preference store unavailable"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidRange is returned when 1 <= start < end <= 140 does not hold
	ErrInvalidRange = errors.New(ErrMsgInvalidRange)

	// ErrUnknownKey is the parent of every unrecognized name error
	ErrUnknownKey = errors.New(ErrMsgUnknownKey)

	ErrUnknownTier        error = &unknownKeyError{msg: ErrMsgUnknownTier}
	ErrUnknownRecipe      error = &unknownKeyError{msg: ErrMsgUnknownRecipe}
	ErrUnknownSlot        error = &unknownKeyError{msg: ErrMsgUnknownSlot}
	ErrUnknownCrystalType error = &unknownKeyError{msg: ErrMsgUnknownCrystalType}
	ErrUnknownTab         error = &unknownKeyError{msg: ErrMsgUnknownTab}

	ErrInvalidGameData  = errors.New(ErrMsgInvalidGameData)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)

// unknownKeyError is a specific lookup failure that also matches ErrUnknownKey
type unknownKeyError struct {
	msg string
}

func (e *unknownKeyError) Error() string {
	return e.msg
}

func (e *unknownKeyError) Unwrap() error {
	return ErrUnknownKey
}
