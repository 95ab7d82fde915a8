package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediabridge/internal/domain/dto"
)

type fakeBridge struct {
	healthErr error
	pages     []dto.PageDescriptor
	listErr   error
	uploadErr error
	deleteErr error

	calls   []string
	uploads []UploadRequest
	urls    []dto.AddURLRequest
	deleted []string
}

func (b *fakeBridge) Health(context.Context) error {
	b.calls = append(b.calls, "health")

	return b.healthErr
}

func (b *fakeBridge) ListPages(context.Context) ([]dto.PageDescriptor, error) {
	b.calls = append(b.calls, "list")

	return b.pages, b.listErr
}

func (b *fakeBridge) Upload(_ context.Context, req UploadRequest) (dto.CreatePageResponse, error) {
	b.calls = append(b.calls, "upload")
	b.uploads = append(b.uploads, req)
	if b.uploadErr != nil {
		return dto.CreatePageResponse{}, b.uploadErr
	}

	return dto.CreatePageResponse{Success: true, PageID: "new"}, nil
}

func (b *fakeBridge) AddURL(_ context.Context, req dto.AddURLRequest) (dto.CreatePageResponse, error) {
	b.calls = append(b.calls, "add-url")
	b.urls = append(b.urls, req)

	return dto.CreatePageResponse{Success: true, PageID: "new"}, b.uploadErr
}

func (b *fakeBridge) DeletePage(_ context.Context, pageID string) error {
	b.calls = append(b.calls, "delete")
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.deleted = append(b.deleted, pageID)

	return nil
}

func connected(t *testing.T, b *fakeBridge, confirm ConfirmFunc) *Controller {
	t.Helper()

	c := NewController(b, confirm)
	require.Equal(t, Connected, c.CheckHealth(context.Background()))
	b.calls = nil

	return c
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Connectivity
	}{
		{name: "ok", want: Connected},
		{name: "error status", err: &StatusError{Status: http.StatusInternalServerError}, want: Errored},
		{name: "unreachable", err: errors.New("connection refused"), want: Offline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBridge{healthErr: tt.err}
			c := NewController(b, nil)
			assert.Equal(t, Checking, c.State().Connectivity)

			assert.Equal(t, tt.want, c.CheckHealth(context.Background()))
			assert.Equal(t, []string{"health"}, b.calls)
		})
	}
}

func TestSubmitUploadWithoutTitleMakesNoCall(t *testing.T) {
	b := &fakeBridge{}
	c := connected(t, b, nil)
	require.NoError(t, c.SelectFile(SelectedFile{Name: "a.png", ContentType: "image/png", Size: 1}))

	_, err := c.SubmitUpload(context.Background())
	assert.EqualError(t, err, "Please enter a title for the page")
	assert.Empty(t, b.calls)
	assert.Equal(t, ErrorMessage, c.State().Message.Kind)
}

func TestSubmitUploadOffline(t *testing.T) {
	b := &fakeBridge{healthErr: errors.New("refused")}
	c := NewController(b, nil)
	c.CheckHealth(context.Background())
	b.calls = nil
	c.Edit(func(s ViewState) ViewState {
		s.Title = "T"
		s.UseExternalURL = true
		s.ExternalURL = "https://x/img.png"

		return s
	})

	_, err := c.SubmitUpload(context.Background())
	assert.ErrorIs(t, err, errNotConnected)
	assert.Empty(t, b.calls)
}

func TestSubmitUploadRefreshesOpenGallery(t *testing.T) {
	b := &fakeBridge{pages: []dto.PageDescriptor{{ID: "new", Title: "T"}}}
	c := connected(t, b, nil)
	require.NoError(t, c.LoadEntries(context.Background()))
	b.calls = nil

	c.Edit(func(s ViewState) ViewState {
		s.Title = "T"
		s.UseExternalURL = true
		s.ExternalURL = "https://x/img.png"

		return s
	})

	resp, err := c.SubmitUpload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", resp.PageID)
	assert.Equal(t, []string{"upload", "list"}, b.calls)
	assert.Equal(t, UploadRequest{Title: "T", Type: "image", ExternalURL: "https://x/img.png"}, b.uploads[0])

	s := c.State()
	assert.Empty(t, s.Title)
	assert.Empty(t, s.ExternalURL)
	assert.Equal(t, Message{Kind: SuccessMessage, Text: "Image uploaded successfully to Notion database!"}, s.Message)
}

func TestSubmitUploadFailureKeepsForm(t *testing.T) {
	b := &fakeBridge{uploadErr: &StatusError{Status: http.StatusBadRequest, Message: "File too large"}}
	c := connected(t, b, nil)
	c.Edit(func(s ViewState) ViewState {
		s.Tab = VideoTab
		s.Title = "T"

		return s
	})
	require.NoError(t, c.SelectFile(SelectedFile{Name: "a.mp4", ContentType: "video/mp4", Size: 10}))

	_, err := c.SubmitUpload(context.Background())
	require.Error(t, err)

	s := c.State()
	assert.Equal(t, "T", s.Title)
	assert.NotNil(t, s.File)
	assert.False(t, s.Busy)
	assert.Equal(t, "Upload failed: File too large", s.Message.Text)
	assert.Equal(t, []string{"upload"}, b.calls)
}

func TestSubmitURLEntry(t *testing.T) {
	b := &fakeBridge{}
	c := connected(t, b, nil)

	_, err := c.SubmitURLEntry(context.Background())
	assert.EqualError(t, err, "Please enter a URL")
	assert.Empty(t, b.calls)

	c.Edit(func(s ViewState) ViewState {
		s.Tab = URLTab
		s.Title = "T2"
		s.URL = "https://example.com"
		s.Caption = "c"

		return s
	})

	_, err = c.SubmitURLEntry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.AddURLRequest{{Title: "T2", URL: "https://example.com", Caption: "c"}}, b.urls)
	assert.Equal(t, []string{"add-url"}, b.calls)
	assert.Empty(t, c.State().URL)
}

func TestLoadEntriesFailureKeepsGallery(t *testing.T) {
	b := &fakeBridge{pages: []dto.PageDescriptor{{ID: "p1"}}}
	c := connected(t, b, nil)
	require.NoError(t, c.LoadEntries(context.Background()))

	b.listErr = errors.New("refused")
	require.Error(t, c.LoadEntries(context.Background()))

	s := c.State()
	assert.True(t, s.GalleryOpen)
	assert.Equal(t, []dto.PageDescriptor{{ID: "p1"}}, s.Entries)
	assert.Equal(t, "Failed to fetch pages: refused", s.Message.Text)
}

func TestDeleteEntry(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		b := &fakeBridge{}
		c := connected(t, b, func(string) bool { return false })

		deleted, err := c.DeleteEntry(context.Background(), "p1", "T")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Empty(t, b.calls)
	})

	t.Run("confirmed", func(t *testing.T) {
		b := &fakeBridge{pages: []dto.PageDescriptor{{ID: "p1"}, {ID: "p2"}}}
		c := connected(t, b, func(title string) bool { return title == "T" })
		require.NoError(t, c.LoadEntries(context.Background()))
		b.calls = nil
		b.pages = []dto.PageDescriptor{{ID: "p2"}}

		deleted, err := c.DeleteEntry(context.Background(), "p1", "T")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []string{"delete", "list"}, b.calls)
		assert.Equal(t, []dto.PageDescriptor{{ID: "p2"}}, c.State().Entries)
	})

	t.Run("bridge failure keeps entries", func(t *testing.T) {
		b := &fakeBridge{pages: []dto.PageDescriptor{{ID: "p1"}}, deleteErr: errors.New("boom")}
		c := connected(t, b, func(string) bool { return true })
		require.NoError(t, c.LoadEntries(context.Background()))
		b.calls = nil

		deleted, err := c.DeleteEntry(context.Background(), "p1", "T")
		require.Error(t, err)
		assert.False(t, deleted)
		assert.Equal(t, []string{"delete"}, b.calls)
		assert.Equal(t, []dto.PageDescriptor{{ID: "p1"}}, c.State().Entries)
	})
}
