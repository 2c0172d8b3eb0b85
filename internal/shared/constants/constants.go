package constants

const (
	// Default pagination
	DefaultLimit  = 20
	DefaultOffset = 0
	MaxLimit      = 100

	// HTTP Headers
	HeaderContentType       = "Content-Type"
	HeaderXRequestID        = "X-Request-ID"
	HeaderXCacheStatus      = "X-Cache-Status"
	HeaderXCacheStaleReason = "X-Cache-Stale-Reason"
	HeaderXGeneratorVersion = "X-Generator-Version"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableContentCacheEntries = "content_cache_entries"
	TableBusinesses          = "businesses"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgStorageUnavailable  = "Storage temporarily unavailable"
)
