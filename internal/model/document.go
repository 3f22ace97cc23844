package model

import "time"

// Document is a scanned file whose text has been extracted by OCR.
// This is a pure domain model with no database-specific dependencies or tags.
type Document struct {
	ID            int64     `json:"id"`
	FileName      string    `json:"fileName"`
	ExtractedText string    `json:"extractedText"`
	FileLink      string    `json:"fileLink"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FileLink is the name+link projection of a Document used by the listing endpoint.
type FileLink struct {
	FileName string `json:"fileName"`
	FileLink string `json:"fileLink"`
}
