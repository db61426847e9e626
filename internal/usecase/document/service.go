package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/domain/repositories"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/genai"
	"github.com/aura-ai/aura-backend/internal/infrastructure/storage"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
	"github.com/aura-ai/aura-backend/pkg/extract"
)

// productSurface names the conversation bucket for document queries
const productSurface = "Trans2Actions"

// historyWindow is how many prior messages ride along with a query
const historyWindow = 5

// Service handles document upload, deletion and retrieval-augmented
// queries over the uploaded corpus.
type Service struct {
	docRepo     repositories.DocumentRepository
	meetingRepo repositories.MeetingRepository
	convRepo    repositories.ConversationRepository
	store       *storage.MinIOClient
	generator   *genai.Client
	logger      *zap.Logger
}

// NewService creates a new document service
func NewService(
	docRepo repositories.DocumentRepository,
	meetingRepo repositories.MeetingRepository,
	convRepo repositories.ConversationRepository,
	store *storage.MinIOClient,
	generator *genai.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		docRepo:     docRepo,
		meetingRepo: meetingRepo,
		convRepo:    convRepo,
		store:       store,
		generator:   generator,
		logger:      logger,
	}
}

// Upload validates, extracts and stores an uploaded document. The
// extension check runs before any storage or network work.
func (s *Service) Upload(ctx context.Context, user *entities.User, filename string, fileContent []byte) (*entities.Document, error) {
	if !extract.IsSupported(filename) {
		return nil, usecaseErrors.ErrUnsupportedFormat
	}

	text, err := extract.Text(fileContent, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrExtractionFailed, err)
	}
	if text == "" {
		return nil, usecaseErrors.ErrExtractionFailed
	}

	workspaceID := ""
	if !user.IsAdmin() {
		workspaceID = user.GetSettings().WorkspaceID
	}

	doc := entities.NewDocument(filename, text, "", int64(len(fileContent)), user.ID, workspaceID)
	doc.StorageKey = fmt.Sprintf("documents/%s/%s", user.ID, doc.ID)

	if err := s.store.UploadFile(ctx, doc.StorageKey, bytes.NewReader(fileContent), int64(len(fileContent)), "application/octet-stream"); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store document record: %w", err)
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("filename", filename),
	)

	return doc, nil
}

// List returns the user's uploaded documents, newest first
func (s *Service) List(ctx context.Context, user *entities.User) ([]*entities.Document, error) {
	return s.docRepo.ListByUploader(ctx, user.ID)
}

// Delete removes a document the user owns, including its stored bytes
func (s *Service) Delete(ctx context.Context, user *entities.User, docID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.UploadedBy != user.ID {
		return usecaseErrors.ErrForbidden
	}

	if doc.StorageKey != "" {
		if err := s.store.DeleteFile(ctx, doc.StorageKey); err != nil {
			s.logger.Warn("failed to delete stored file",
				zap.String("storage_key", doc.StorageKey),
				zap.Error(err),
			)
		}
	}

	return s.docRepo.Delete(ctx, docID)
}

// QueryResult is the answer to a document query
type QueryResult struct {
	Answer string `json:"answer"`
	Query  string `json:"query"`
}

// Query answers a natural-language question over the user's uploaded
// documents, falling back to meeting transcripts when no uploads
// exist. The exchange is appended to the user's conversation history.
func (s *Service) Query(ctx context.Context, user *entities.User, query string) (*QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	sources, err := s.collectSources(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return &QueryResult{
			Answer: "No documents or meeting transcripts found. Please upload documents or meeting transcripts first.",
			Query:  query,
		}, nil
	}

	contextText := buildContext(sources)
	if contextText == "" {
		return &QueryResult{
			Answer: "No relevant context found in the uploaded documents.",
			Query:  query,
		}, nil
	}

	conversation, history := s.loadHistory(ctx, user.ID)

	generator := s.generator.WithKey(user.GetSettings().GenerationKey)
	answer, err := generator.GenerateWithHistory(ctx, history, queryPrompt(contextText, query))
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	conversation.Append(query, answer)
	if err := s.convRepo.Upsert(ctx, conversation); err != nil {
		s.logger.Warn("failed to persist conversation", zap.Error(err))
	}

	return &QueryResult{Answer: answer, Query: query}, nil
}

// ClearHistory drops the user's conversation history
func (s *Service) ClearHistory(ctx context.Context, user *entities.User) error {
	return s.convRepo.Delete(ctx, user.ID, productSurface)
}

// collectSources gathers uploaded documents plus meeting transcripts
// visible to the user.
func (s *Service) collectSources(ctx context.Context, user *entities.User) ([]sourceText, error) {
	var sources []sourceText

	docs, err := s.docRepo.ListByUploader(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.Content == "" {
			continue
		}
		sources = append(sources, sourceText{
			Text:      doc.Content,
			Label:     "Document: " + doc.Filename,
			IsUpload:  true,
			CreatedAt: doc.CreatedAt,
		})
	}

	workspaceID := user.GetSettings().WorkspaceID
	if workspaceID != "" {
		meetings, err := s.meetingRepo.ListByWorkspace(ctx, workspaceID, 50, 0)
		if err != nil {
			return nil, err
		}
		for _, m := range meetings {
			if m.TranscriptText == "" {
				continue
			}
			sources = append(sources, sourceText{
				Text:      m.TranscriptText,
				Label:     "Meeting: " + m.Title,
				CreatedAt: m.CreatedAt,
			})
		}
	}

	return sources, nil
}

// loadHistory fetches the stored conversation, creating a fresh one
// when none exists, and returns the recent turns as generation history.
func (s *Service) loadHistory(ctx context.Context, userID uuid.UUID) (*entities.Conversation, []genai.Turn) {
	conversation, err := s.convRepo.FindByUserAndProduct(ctx, userID, productSurface)
	if err != nil {
		if !errors.Is(err, entities.ErrConversationNotFound) {
			s.logger.Warn("failed to load conversation", zap.Error(err))
		}
		conversation = &entities.Conversation{
			ID:      uuid.New(),
			UserID:  userID,
			Product: productSurface,
		}
	}

	messages := conversation.Messages
	if len(messages) > historyWindow {
		messages = messages[len(messages)-historyWindow:]
	}

	turns := make([]genai.Turn, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		turns = append(turns, genai.Turn{Role: role, Text: msg.Content})
	}
	return conversation, turns
}

func queryPrompt(contextText, query string) string {
	return fmt.Sprintf(`You are an assistant helping users understand their uploaded documents and meeting transcripts.

Here is the context retrieved from the uploaded documents (most recent documents are prioritized):

%s

Based ONLY on the above context, answer the following question accurately and concisely.
- If the answer can be found in the context, provide it clearly.
- If the answer cannot be found, say "I cannot find this information in the uploaded documents."
- Do not make up information that is not in the context.

Question: %s

Answer:`, contextText, query)
}
