package documents

import "time"

// Document represents an uploaded document and its canonical extracted text.
// Content is set once at creation and never re-extracted.
type Document struct {
	ID            string
	FileName      string
	OriginalName  string
	FilePath      string
	FileType      string
	Content       string
	ContentLength int
	UploadedAt    time.Time
}
