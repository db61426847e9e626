package handler

import (
	stdErrors "errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/errors"
	"github.com/aura-ai/aura-backend/internal/adapter/dto/common"
	documentDto "github.com/aura-ai/aura-backend/internal/adapter/dto/document"
	"github.com/aura-ai/aura-backend/internal/adapter/presenter"
	"github.com/aura-ai/aura-backend/internal/usecase/document"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
	"github.com/aura-ai/aura-backend/pkg/extract"
)

// Document handles document query HTTP requests
type Document struct {
	documentService *document.Service
	logger          *zap.Logger
}

// NewDocument creates a new document handler
func NewDocument(documentService *document.Service, logger *zap.Logger) *Document {
	return &Document{
		documentService: documentService,
		logger:          logger,
	}
}

// Query answers a question over the user's documents and meetings
// POST /v1/trans2actions/query
func (h *Document) Query(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req documentDto.QueryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.documentService.Query(ctx, user, req.Query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, documentDto.QueryResponse{
		Query:  result.Query,
		Answer: result.Answer,
	})
}

// Upload stores a document for later queries. The file type is checked
// before any extraction or network work happens.
// POST /v1/trans2actions/upload (multipart)
func (h *Document) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing file"))
	}

	if !extract.IsSupported(fileHeader.Filename) {
		return HandleError(h.logger, c, errors.ErrDocumentUnsupportedFormat(strings.Join(extract.SupportedList(), ", ")))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Cannot read uploaded file"))
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Cannot read uploaded file"))
	}

	doc, err := h.documentService.Upload(ctx, user, fileHeader.Filename, content)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUnsupportedFormat) {
			return HandleError(h.logger, c, errors.ErrDocumentUnsupportedFormat(strings.Join(extract.SupportedList(), ", ")))
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, documentDto.UploadResponse{
		Document: presenter.ToDocumentResponse(doc),
	})
}

// List returns the user's uploaded documents
// GET /v1/trans2actions/documents
func (h *Document) List(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	docs, err := h.documentService.List(ctx, user)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToDocumentList(docs),
	})
}

// Delete removes one of the user's documents
// DELETE /v1/trans2actions/documents/:id
func (h *Document) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid document id"))
	}

	if err := h.documentService.Delete(ctx, user, docID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Document deleted",
	})
}

// ClearHistory drops the user's conversation history
// DELETE /v1/trans2actions/history
func (h *Document) ClearHistory(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.documentService.ClearHistory(ctx, user); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Conversation history cleared",
	})
}
