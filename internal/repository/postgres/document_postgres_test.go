package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"docsearch/internal/model"
)

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		FileName:      "scan.pdf",
		ExtractedText: "page one",
		FileLink:      "https://bucket.s3.us-east-1.amazonaws.com/documents/scan.pdf",
	}

	rows := sqlmock.NewRows([]string{"id", "file_name", "extracted_text", "file_link", "created_at"}).
		AddRow(7, doc.FileName, doc.ExtractedText, doc.FileLink, now)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.FileName, doc.ExtractedText, doc.FileLink).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, doc.FileLink, result.FileLink)
	assert.Equal(t, now, result.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_CreateEmptyLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs("photo.png", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "extracted_text", "file_link", "created_at"}).
			AddRow(1, "photo.png", "", "", time.Now()))

	result, err := repo.Create(context.Background(), &model.Document{FileName: "photo.png"})

	assert.NoError(t, err)
	assert.Empty(t, result.FileLink)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListTexts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("persisted order", func(t *testing.T) {
		mock.ExpectQuery("SELECT extracted_text FROM documents ORDER BY id").
			WillReturnRows(sqlmock.NewRows([]string{"extracted_text"}).AddRow("first").AddRow("").AddRow("third"))

		texts, err := repo.ListTexts(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "", "third"}, texts)
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT extracted_text FROM documents").
			WillReturnRows(sqlmock.NewRows([]string{"extracted_text"}))

		texts, err := repo.ListTexts(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, texts)
		assert.Empty(t, texts)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT extracted_text FROM documents").
			WillReturnError(errors.New("db down"))

		texts, err := repo.ListTexts(ctx)

		assert.Error(t, err)
		assert.Nil(t, texts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListFiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT file_name, file_link FROM documents ORDER BY id").
			WillReturnRows(sqlmock.NewRows([]string{"file_name", "file_link"}).
				AddRow("a.pdf", "https://example/a.pdf").
				AddRow("a.pdf", ""))

		files, err := repo.ListFiles(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []model.FileLink{
			{FileName: "a.pdf", FileLink: "https://example/a.pdf"},
			{FileName: "a.pdf", FileLink: ""},
		}, files)
	})

	t.Run("scan error", func(t *testing.T) {
		mock.ExpectQuery("SELECT file_name, file_link FROM documents").
			WillReturnRows(sqlmock.NewRows([]string{"file_name"}).AddRow("only-one-column"))

		files, err := repo.ListFiles(ctx)

		assert.Error(t, err)
		assert.Nil(t, files)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
