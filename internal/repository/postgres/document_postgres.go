package postgres

import (
	"context"
	"database/sql"

	"docsearch/internal/model"
	"docsearch/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (file_name, extracted_text, file_link)
		VALUES ($1, $2, $3)
		RETURNING id, file_name, extracted_text, file_link, created_at
	`
	row := r.db.QueryRowContext(ctx, q, doc.FileName, doc.ExtractedText, doc.FileLink)

	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.FileName,
		&out.ExtractedText,
		&out.FileLink,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTexts loads the extracted_text column of every row.
func (r *DocumentPostgres) ListTexts(ctx context.Context) ([]string, error) {
	const q = `SELECT extracted_text FROM documents ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	texts := make([]string, 0)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

// ListFiles returns the file_name/file_link projection of every row.
func (r *DocumentPostgres) ListFiles(ctx context.Context) ([]model.FileLink, error) {
	const q = `SELECT file_name, file_link FROM documents ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]model.FileLink, 0)
	for rows.Next() {
		var f model.FileLink
		if err := rows.Scan(&f.FileName, &f.FileLink); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
