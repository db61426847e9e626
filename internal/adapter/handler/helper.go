package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/errors"
	"github.com/aura-ai/aura-backend/internal/domain/entities"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// currentUser returns the authenticated user stored by the auth middleware
func currentUser(c echo.Context) (*entities.User, error) {
	user, ok := c.Get("user").(*entities.User)
	if !ok || user == nil {
		return nil, errors.ErrUnauthenticated()
	}
	return user, nil
}

// bindAndValidate decodes and validates a request body
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidArgument("Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}

// toAppError maps usecase and entity sentinels to structured AppErrors.
// Errors that are already AppErrors pass through unchanged.
func toAppError(err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	switch {
	// Auth
	case stdErrors.Is(err, entities.ErrUserNotFound),
		stdErrors.Is(err, usecaseErrors.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, entities.ErrUserAlreadyExists):
		return errors.ErrUserAlreadyExists("")
	case stdErrors.Is(err, entities.ErrInvalidPassword),
		stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, entities.ErrInvalidPersona):
		return errors.ErrInvalidPersona("")
	case stdErrors.Is(err, entities.ErrInvalidToken),
		stdErrors.Is(err, usecaseErrors.ErrTokenInvalid):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
		return errors.ErrTokenExpired()
	case stdErrors.Is(err, entities.ErrSessionNotFound),
		stdErrors.Is(err, entities.ErrSessionExpired):
		return errors.ErrInvalidRefreshToken()
	case stdErrors.Is(err, entities.ErrOAuthStateMismatch):
		return errors.ErrOAuthFailed("google", err)
	case stdErrors.Is(err, entities.ErrOAuthCodeInvalid):
		return errors.ErrInvalidArgument("Missing code or state parameter")

	// Board
	case stdErrors.Is(err, usecaseErrors.ErrBoardNotConfigured):
		return errors.ErrBoardNotConfigured("Board sync key")
	case stdErrors.Is(err, usecaseErrors.ErrBoardReauth):
		return errors.ErrBoardReauthRequired(err)
	case stdErrors.Is(err, usecaseErrors.ErrBoardFetchFailed):
		return errors.ErrBoardFetchFailed("", err)
	case stdErrors.Is(err, usecaseErrors.ErrBoardUpdateFailed):
		return errors.ErrBoardUpdateFailed("", err)

	// Meetings
	case stdErrors.Is(err, entities.ErrMeetingNotFound),
		stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound("")
	case stdErrors.Is(err, entities.ErrActionItemNotFound),
		stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return errors.ErrActionItemNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyTranscript):
		return errors.ErrDocumentExtractionFailed()

	// Documents
	case stdErrors.Is(err, entities.ErrDocumentNotFound),
		stdErrors.Is(err, usecaseErrors.ErrDocumentNotFound):
		return errors.ErrDocumentNotFound("")
	case stdErrors.Is(err, usecaseErrors.ErrExtractionFailed):
		return errors.ErrDocumentExtractionFailed()

	// Common
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, entities.ErrInvalidRequest):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrForbidden),
		stdErrors.Is(err, entities.ErrForbidden):
		return errors.ErrForbidden("Access denied")
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized),
		stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	}

	return err
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	err = toAppError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// parseTaskFilter normalizes the ?filter= query value, defaulting to all
func parseTaskFilter(raw string) entities.TaskFilter {
	filter := entities.TaskFilter(strings.ToLower(strings.TrimSpace(raw)))
	if !filter.IsValid() {
		return entities.FilterAll
	}
	return filter
}
