package dto

import "encoding/json"

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ListPagesResponse struct {
	Success bool             `json:"success"`
	Pages   []PageDescriptor `json:"pages"`
}

type CreatePageResponse struct {
	Success    bool   `json:"success"`
	PageID     string `json:"pageId"`
	Message    string `json:"message,omitempty"`
	ArchiveURL string `json:"archiveUrl,omitempty"`
}

type DeletePageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DebugBlocksResponse struct {
	Success bool              `json:"success"`
	Blocks  []json.RawMessage `json:"blocks"`
}

// ErrorResponse is the body of every non-2xx bridge response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type AddURLRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}
