package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Calculator error messages
	ErrMsgExperienceFailed = "Failed to calculate experience"
	ErrMsgPotionsFailed    = "Failed to calculate potions"
	ErrMsgRecipeFailed     = "Failed to calculate recipe"
	ErrMsgCrystalsFailed   = "Failed to calculate crystal plan"
	ErrMsgExpectedFailed   = "Failed to calculate expected crystals"
	ErrMsgTransferFailed   = "Failed to calculate transfer cost"
	ErrMsgSimulationFailed = "Failed to run simulation"

	// Preference error messages
	ErrMsgGetPreferencesFailed  = "Failed to load preferences"
	ErrMsgSavePreferencesFailed = "Failed to save preferences"
	ErrMsgSaveTabFailed         = "Failed to save active tab"
)

// Success messages for API responses
const (
	MsgPreferencesSaved = "Preferences saved"
	MsgTabSaved         = "Active tab saved"
)
