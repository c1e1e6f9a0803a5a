package documents

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvscore-backend/internal/extract"
	"cvscore-backend/internal/shared/metrics"
	"cvscore-backend/internal/shared/storage/object"
)

// Service coordinates document upload, lookup and text extraction.
type Service struct {
	Repo  DocumentsRepo
	Store object.ObjectStore
}

// NewService constructs a documents Service.
func NewService(repo DocumentsRepo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store}
}

// Upload stores the file bytes and records the document.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	storageKey, sizeBytes, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("store file: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("save document: %w", err)
	}

	metrics.IncDocumentUploaded()
	return doc, nil
}

// Get returns a document owned by the user.
func (s *Service) Get(ctx context.Context, userId, documentID string) (Document, error) {
	return s.Repo.GetByID(ctx, userId, documentID)
}

// Current returns the most recently uploaded document for the user.
func (s *Service) Current(ctx context.Context, userId string) (Document, error) {
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// Text returns the extracted plain text of a document. Extraction runs once
// per document; the result is cached on the record.
func (s *Service) Text(ctx context.Context, userId, documentID string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, userId, documentID)
	if err != nil {
		return "", err
	}
	if doc.ExtractedText != "" {
		return doc.ExtractedText, nil
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", err
	}

	if err := s.Repo.UpdateExtractedText(ctx, userId, documentID, text); err != nil {
		return "", fmt.Errorf("cache extracted text: %w", err)
	}
	return text, nil
}
