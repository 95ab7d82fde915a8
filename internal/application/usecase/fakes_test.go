package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"mediabridge/internal/domain/entity"
	"mediabridge/internal/domain/model"
)

type fakeNotion struct {
	mu        sync.Mutex
	drafts    []model.PageDraft
	createErr error
	pages     []model.Page
	queryErr  error
	blocks    map[string][]model.Block
	blockErr  map[string]error
	archived  []string
	removeErr error
}

func (f *fakeNotion) CreatePage(_ context.Context, draft model.PageDraft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return "", f.createErr
	}
	f.drafts = append(f.drafts, draft)

	return "page-" + draft.Title, nil
}

func (f *fakeNotion) QueryPages(context.Context) ([]model.Page, error) {
	return f.pages, f.queryErr
}

func (f *fakeNotion) ListBlocks(_ context.Context, pageID string) ([]model.Block, error) {
	if err := f.blockErr[pageID]; err != nil {
		return nil, err
	}

	return f.blocks[pageID], nil
}

func (f *fakeNotion) ArchivePage(_ context.Context, pageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.removeErr != nil {
		return f.removeErr
	}
	f.archived = append(f.archived, pageID)

	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entity.EntryEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event entity.EntryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

type fakeArchive struct {
	uploaded  []string
	removed   []string
	uploadErr error
}

func (a *fakeArchive) UploadFile(_ context.Context, body io.Reader, size int64, name, contentType string,
) (entity.ArchiveResult, error) {
	if a.uploadErr != nil {
		return entity.ArchiveResult{}, a.uploadErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return entity.ArchiveResult{}, err
	}
	key := "obj-" + name
	a.uploaded = append(a.uploaded, key)

	return entity.ArchiveResult{
		Bucket:   "archive",
		Key:      key,
		Location: "http://minio/archive/" + key,
		Size:     size,
		Type:     contentType,
	}, nil
}

func (a *fakeArchive) Remove(_ context.Context, _, object string) error {
	a.removed = append(a.removed, object)

	return nil
}

type fakeRecorder struct {
	mu         sync.Mutex
	operations map[string]int
	failed     map[string]int
	dropped    []string
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{operations: map[string]int{}, failed: map[string]int{}}
}

func (r *fakeRecorder) RecordOperation(op string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.operations[op]++
	if err != nil {
		r.failed[op]++
	}
}

func (r *fakeRecorder) RecordDroppedEntry(pageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dropped = append(r.dropped, pageID)
}

// serviceErr mimics an external API error carrying its own message.
type serviceErr struct {
	msg string
}

func (e serviceErr) Error() string          { return "service: " + e.msg }
func (e serviceErr) ServiceMessage() string { return e.msg }

var errBoom = errors.New("boom")
