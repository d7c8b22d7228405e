package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"originalName"`
	FileType      string    `json:"fileType"`
	ContentLength int       `json:"contentLength"`
	UploadDate    time.Time `json:"uploadDate"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		Filename:      doc.FileName,
		OriginalName:  doc.OriginalName,
		FileType:      doc.FileType,
		ContentLength: doc.ContentLength,
		UploadDate:    doc.UploadedAt,
	}
}
