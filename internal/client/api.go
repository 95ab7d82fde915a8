package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"mediabridge/internal/domain/dto"
)

// Bridge is the subset of the bridge HTTP API the controller drives.
type Bridge interface {
	Health(ctx context.Context) error
	ListPages(ctx context.Context) ([]dto.PageDescriptor, error)
	Upload(ctx context.Context, req UploadRequest) (dto.CreatePageResponse, error)
	AddURL(ctx context.Context, req dto.AddURLRequest) (dto.CreatePageResponse, error)
	DeletePage(ctx context.Context, pageID string) error
}

// UploadRequest carries either File or ExternalURL.
type UploadRequest struct {
	Title       string
	Caption     string
	Type        string
	ExternalURL string
	File        *SelectedFile
}

// StatusError is a non-2xx answer from the bridge.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

type HTTPBridge struct {
	baseURL string
	http    *http.Client
}

func NewHTTPBridge(baseURL string, httpClient *http.Client) *HTTPBridge {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPBridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (b *HTTPBridge) Health(ctx context.Context) error {
	var resp dto.HealthResponse

	return b.do(ctx, http.MethodGet, "/api/health", nil, "", &resp, "Health check failed")
}

func (b *HTTPBridge) ListPages(ctx context.Context) ([]dto.PageDescriptor, error) {
	var resp dto.ListPagesResponse
	if err := b.do(ctx, http.MethodGet, "/api/pages", nil, "", &resp, "Failed to fetch pages"); err != nil {
		return nil, err
	}

	return resp.Pages, nil
}

func (b *HTTPBridge) Upload(ctx context.Context, req UploadRequest) (dto.CreatePageResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if req.File != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, req.File.Name))
		header.Set("Content-Type", req.File.ContentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return dto.CreatePageResponse{}, err
		}
		if _, err := part.Write(req.File.Data); err != nil {
			return dto.CreatePageResponse{}, err
		}
	} else if err := w.WriteField("externalUrl", req.ExternalURL); err != nil {
		return dto.CreatePageResponse{}, err
	}

	for _, field := range [][2]string{{"title", req.Title}, {"caption", req.Caption}, {"type", req.Type}} {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return dto.CreatePageResponse{}, err
		}
	}
	if err := w.Close(); err != nil {
		return dto.CreatePageResponse{}, err
	}

	var resp dto.CreatePageResponse
	err := b.do(ctx, http.MethodPost, "/api/upload", &body, w.FormDataContentType(), &resp,
		"Failed to upload to Notion")

	return resp, err
}

func (b *HTTPBridge) AddURL(ctx context.Context, req dto.AddURLRequest) (dto.CreatePageResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return dto.CreatePageResponse{}, err
	}

	var resp dto.CreatePageResponse
	err = b.do(ctx, http.MethodPost, "/api/add-url", bytes.NewReader(payload), "application/json", &resp,
		"Failed to add URL to Notion")

	return resp, err
}

func (b *HTTPBridge) DeletePage(ctx context.Context, pageID string) error {
	var resp dto.DeletePageResponse

	return b.do(ctx, http.MethodDelete, "/api/pages/"+url.PathEscape(pageID), nil, "", &resp,
		"Failed to delete page")
}

func (b *HTTPBridge) do(ctx context.Context, method, path string, body io.Reader, contentType string,
	out any, fallback string,
) error {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e dto.ErrorResponse
		_ = json.Unmarshal(data, &e)

		statusErr := &StatusError{Status: resp.StatusCode, Code: e.Code, Message: e.Error}
		if statusErr.Message == "" {
			statusErr.Message = fallback
		}

		return statusErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// IsStatusError reports whether the bridge answered, as opposed to being
// unreachable.
func IsStatusError(err error) bool {
	var se *StatusError

	return errors.As(err, &se)
}
