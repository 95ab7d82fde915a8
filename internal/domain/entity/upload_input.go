package entity

import "io"

// UploadInput is one submission of the upload form.
type UploadInput struct {
	Title       string `json:"title"`
	Caption     string `json:"caption"`
	Type        string `json:"type"`
	ExternalURL string `json:"externalUrl"`
	File        *FileInput
}

// FileInput is an uploaded payload. Size is the declared size; Content is
// read at most once.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}
