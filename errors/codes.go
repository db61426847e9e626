package errors

// ErrorCode identifies an application error category in responses and logs.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_INVALID_CREDENTIALS
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_AUTH_USER_ALREADY_EXISTS
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN
	ErrorCode_AUTH_OAUTH_FAILED
	ErrorCode_AUTH_INVALID_PERSONA

	// Board sync
	ErrorCode_BOARD_NOT_CONFIGURED
	ErrorCode_BOARD_FETCH_FAILED
	ErrorCode_BOARD_UPDATE_FAILED
	ErrorCode_BOARD_REAUTH_REQUIRED

	// Meetings
	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_MEETING_PROCESSING_FAILED
	ErrorCode_MEETING_UNSUPPORTED_FORMAT
	ErrorCode_ACTION_ITEM_NOT_FOUND
	ErrorCode_CONVERSION_FAILED

	// Documents
	ErrorCode_DOCUMENT_NOT_FOUND
	ErrorCode_DOCUMENT_UNSUPPORTED_FORMAT
	ErrorCode_DOCUMENT_EXTRACTION_FAILED

	// Settings
	ErrorCode_SETTINGS_KEY_MISSING

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED
	ErrorCode_GENERATION_FAILED

	// Database
	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                         "UNKNOWN",
	ErrorCode_HTTP_OK:                         "OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                  "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:               "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                       "FORBIDDEN",
	ErrorCode_AUTH_INVALID_TOKEN:              "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:              "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:        "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:             "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:        "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN:      "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_AUTH_OAUTH_FAILED:               "AUTH_OAUTH_FAILED",
	ErrorCode_AUTH_INVALID_PERSONA:            "AUTH_INVALID_PERSONA",
	ErrorCode_BOARD_NOT_CONFIGURED:            "BOARD_NOT_CONFIGURED",
	ErrorCode_BOARD_FETCH_FAILED:              "BOARD_FETCH_FAILED",
	ErrorCode_BOARD_UPDATE_FAILED:             "BOARD_UPDATE_FAILED",
	ErrorCode_BOARD_REAUTH_REQUIRED:           "BOARD_REAUTH_REQUIRED",
	ErrorCode_MEETING_NOT_FOUND:               "MEETING_NOT_FOUND",
	ErrorCode_MEETING_PROCESSING_FAILED:       "MEETING_PROCESSING_FAILED",
	ErrorCode_MEETING_UNSUPPORTED_FORMAT:      "MEETING_UNSUPPORTED_FORMAT",
	ErrorCode_ACTION_ITEM_NOT_FOUND:           "ACTION_ITEM_NOT_FOUND",
	ErrorCode_CONVERSION_FAILED:               "CONVERSION_FAILED",
	ErrorCode_DOCUMENT_NOT_FOUND:              "DOCUMENT_NOT_FOUND",
	ErrorCode_DOCUMENT_UNSUPPORTED_FORMAT:     "DOCUMENT_UNSUPPORTED_FORMAT",
	ErrorCode_DOCUMENT_EXTRACTION_FAILED:      "DOCUMENT_EXTRACTION_FAILED",
	ErrorCode_SETTINGS_KEY_MISSING:            "SETTINGS_KEY_MISSING",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_GENERATION_FAILED:               "GENERATION_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
