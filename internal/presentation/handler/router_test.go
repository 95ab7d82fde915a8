package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediabridge/internal/application/usecase"
	"mediabridge/internal/domain/dto"
	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/infrastructure/metrics"
	"mediabridge/internal/infrastructure/notion"
	"mediabridge/internal/infrastructure/notion/notiontest"
)

const (
	testAPIKey     = "secret_test"
	testDatabaseID = "db-0001"
)

type bridge struct {
	e   *echo.Echo
	api *notiontest.Server
}

func setupBridge(t *testing.T, listing usecase.ListerConfig) *bridge {
	t.Helper()

	api := notiontest.New(testAPIKey, testDatabaseID)
	t.Cleanup(api.Close)

	client, err := notion.New(notion.Config{
		APIKey:     testAPIKey,
		DatabaseID: testDatabaseID,
		BaseURL:    api.BaseURL(),
	}, api.Client())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.New(reg)
	require.NoError(t, err)

	publisher := broker.NopPublisher{}
	e := NewRouter(RouterConfig{Recorder: recorder, Gatherer: reg}, Usecases{
		Uploader:  usecase.NewUploader(client, publisher, nil, nil, recorder, usecase.UploaderConfig{}),
		URLAdder:  usecase.NewURLAdder(client, publisher, recorder),
		Lister:    usecase.NewLister(client, client, recorder, listing),
		Deleter:   usecase.NewDeleter(client, publisher, recorder),
		Inspector: usecase.NewInspector(client),
	})

	return &bridge{e: e, api: api}
}

func (b *bridge) do(t *testing.T, req *http.Request, out any) int {
	t.Helper()

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}

	return rec.Code
}

func (b *bridge) list(t *testing.T) []dto.PageDescriptor {
	t.Helper()

	var resp dto.ListPagesResponse
	status := b.do(t, httptest.NewRequest(http.MethodGet, "/api/pages", nil), &resp)
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)

	return resp.Pages
}

func formRequest(fields map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func multipartRequest(t *testing.T, fields map[string]string, fileName, contentType string, data []byte,
) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func jsonRequest(t *testing.T, method, path string, v any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(v)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHealth(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.HealthResponse
	status := b.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil), &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, dto.HealthResponse{Status: "ok", Message: "Server is running"}, resp)
}

func TestUploadExternalURLThenList(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var created dto.CreatePageResponse
	status := b.do(t, formRequest(map[string]string{
		"title":       "T1",
		"externalUrl": "https://x/img.png",
		"type":        "image",
	}), &created)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.PageID)

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Equal(t, created.PageID, pages[0].ID)
	assert.Equal(t, "T1", pages[0].Title)
	require.NotNil(t, pages[0].Media)
	assert.Equal(t, "image", pages[0].Media.Type)
	assert.Equal(t, "https://x/img.png", pages[0].Media.URL)
}

func TestAddURLThenList(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var created dto.CreatePageResponse
	status := b.do(t, jsonRequest(t, http.MethodPost, "/api/add-url", dto.AddURLRequest{
		Title:   "T2",
		URL:     "https://example.com",
		Caption: "c",
	}), &created)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, created.Success)

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Equal(t, &dto.MediaDescriptor{Type: "bookmark", URL: "https://example.com", Caption: "c"},
		pages[0].Media)
}

func TestAddURLMissingURL(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.ErrorResponse
	status := b.do(t, jsonRequest(t, http.MethodPost, "/api/add-url", dto.AddURLRequest{Title: "T"}), &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No URL provided", resp.Error)
	assert.Zero(t, b.api.CreateCount())
}

func TestAddURLWithoutTitleIsUntitled(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var created dto.CreatePageResponse
	status := b.do(t, jsonRequest(t, http.MethodPost, "/api/add-url", dto.AddURLRequest{
		URL: "https://example.com",
	}), &created)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, b.api.CreateCount())

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Equal(t, "Untitled", pages[0].Title)
}

func TestUploadFile(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var created dto.CreatePageResponse
	status := b.do(t, multipartRequest(t, map[string]string{"title": "photo", "type": "image"},
		"photo.png", "image/png", bytes.Repeat([]byte{1}, 1024)), &created)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, created.Message)

	children := b.api.Children(created.PageID)
	require.Len(t, children, 3)
	assert.Equal(t, "paragraph", children[0]["type"])
	assert.Equal(t, "callout", children[2]["type"])

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Nil(t, pages[0].Media)
}

func TestUploadFileTooLarge(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.ErrorResponse
	status := b.do(t, multipartRequest(t, map[string]string{"title": "big", "type": "video"},
		"big.mp4", "video/mp4", make([]byte, 6*1024*1024)), &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, entity.CodeFileTooLarge, resp.Code)
	assert.Zero(t, b.api.CreateCount())
	assert.Empty(t, b.list(t))
}

func TestBodyLimitIsPayloadTooLarge(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.ErrorResponse
	status := b.do(t, multipartRequest(t, map[string]string{"title": "huge", "type": "video"},
		"huge.mp4", "video/mp4", make([]byte, 26*1024*1024)), &resp)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, entity.CodePayloadTooLarge, resp.Code)
	assert.Equal(t, entity.PayloadTooLargeMessage, resp.Error)
	assert.Zero(t, b.api.CreateCount())
}

func TestUploadValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		code   string
		msg    string
	}{
		{
			name:   "missing title",
			fields: map[string]string{"type": "image", "externalUrl": "https://x/img.png"},
			code:   entity.CodeValidationFailed,
			msg:    "title is required",
		},
		{
			name:   "no payload",
			fields: map[string]string{"title": "T", "type": "image"},
			msg:    "No file or external URL provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBridge(t, usecase.ListerConfig{})

			var resp dto.ErrorResponse
			status := b.do(t, formRequest(tt.fields), &resp)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.msg, resp.Error)
			assert.Zero(t, b.api.CreateCount())
		})
	}
}

func TestUploadPayloadTooLarge(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})
	b.api.RejectPayloadTooLarge(true)

	var resp dto.ErrorResponse
	status := b.do(t, formRequest(map[string]string{
		"title":       "T",
		"externalUrl": "https://x/img.png",
		"type":        "image",
	}), &resp)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, entity.CodePayloadTooLarge, resp.Code)
}

func TestListIsStable(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{FanOutLimit: 2})
	first := b.api.Seed("first")
	second := b.api.Seed("second", map[string]any{
		"type":     "bookmark",
		"bookmark": map[string]any{"url": "https://example.com", "caption": []any{}},
	})
	third := b.api.Seed("third")

	ids := func(pages []dto.PageDescriptor) []string {
		out := make([]string, 0, len(pages))
		for _, p := range pages {
			out = append(out, p.ID)
		}

		return out
	}

	want := []string{third, second, first}
	assert.Equal(t, want, ids(b.list(t)))
	assert.Equal(t, want, ids(b.list(t)))
}

func TestListDropsUnreadableEntry(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})
	kept := b.api.Seed("kept")
	broken := b.api.Seed("broken")
	b.api.FailBlocks(broken)

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Equal(t, kept, pages[0].ID)

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "mediabridge_entries_dropped_total 1")
}

func TestListStrictFails(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{Strict: true})
	b.api.FailBlocks(b.api.Seed("broken"))

	var resp dto.ErrorResponse
	status := b.do(t, httptest.NewRequest(http.MethodGet, "/api/pages", nil), &resp)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEmpty(t, resp.Error)
}

func TestDeleteThenList(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})
	keep := b.api.Seed("keep")
	gone := b.api.Seed("gone")

	var resp dto.DeletePageResponse
	status := b.do(t, httptest.NewRequest(http.MethodDelete, "/api/pages/"+gone, nil), &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, dto.DeletePageResponse{Success: true, Message: "Page deleted successfully"}, resp)
	assert.True(t, b.api.Archived(gone))

	pages := b.list(t)
	require.Len(t, pages, 1)
	assert.Equal(t, keep, pages[0].ID)
}

func TestDeleteUnknownPage(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.ErrorResponse
	status := b.do(t, httptest.NewRequest(http.MethodDelete, "/api/pages/nope", nil), &resp)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Could not find page.", resp.Error)
}

func TestDebugBlocks(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})
	id := b.api.Seed("raw", map[string]any{
		"type":        "unsupported",
		"unsupported": map[string]any{},
	})

	var resp struct {
		Success bool             `json:"success"`
		Blocks  []map[string]any `json:"blocks"`
	}
	status := b.do(t, httptest.NewRequest(http.MethodGet, "/api/debug/page/"+id, nil), &resp)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "unsupported", resp.Blocks[0]["type"])
}

func TestUnknownRoute(t *testing.T) {
	b := setupBridge(t, usecase.ListerConfig{})

	var resp dto.ErrorResponse
	status := b.do(t, httptest.NewRequest(http.MethodGet, "/api/nope", nil), &resp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", resp.Error)
}
