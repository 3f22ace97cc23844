package repository

import (
	"context"

	"docsearch/internal/model"
)

// DocumentRepository defines data access for OCR'd documents.
// Records are append-only: there is no update or delete.
type DocumentRepository interface {
	// Create inserts a new document record and returns it with the
	// database-assigned ID and CreatedAt.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// ListTexts returns the extracted text of every document in persisted order.
	ListTexts(ctx context.Context) ([]string, error)

	// ListFiles returns the name and link of every document in persisted order.
	ListFiles(ctx context.Context) ([]model.FileLink, error)
}
