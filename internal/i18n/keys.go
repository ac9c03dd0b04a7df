package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"

	// ErrKeyInvalidCountry is returned when a country key is not in the active table.
	ErrKeyInvalidCountry   = "error.invalid_country"
	ErrKeyTooManyItems     = "error.too_many_items"
	ErrKeyNoItems          = "error.no_items"
	ErrKeyRunNotFound      = "error.run_not_found"
	ErrKeyStoreDisabled    = "error.store_disabled"
	ErrKeyStoreUnavailable = "error.store_unavailable"
	ErrKeyHSLookupDisabled = "error.hs_lookup_disabled"
	ErrKeyHSLookupFailed   = "error.hs_lookup_failed"
)

// Success message translation keys.
const (
	SuccessKeyRunSaved = "success.run_saved"
)
