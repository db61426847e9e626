package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Board errors
var (
	ErrBoardNotConfigured = errors.New("board connection not configured")
	ErrBoardReauth        = errors.New("board credentials rejected, reconnect required")
	ErrBoardFetchFailed   = errors.New("board fetch failed")
	ErrBoardUpdateFailed  = errors.New("board update failed")
	ErrStaleView          = errors.New("view superseded by a newer refresh")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrActionItemNotFound = errors.New("action item not found")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrEmptyTranscript    = errors.New("transcript is empty")
)

// Document errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrExtractionFailed = errors.New("text extraction failed")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotActive    = errors.New("user is not active")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)
