// Package notiontest provides an in-memory stand-in for the document
// database REST API, good enough for the bridge's own calls.
package notiontest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultPageSize = 100

type page struct {
	id         string
	created    time.Time
	archived   bool
	properties json.RawMessage
	children   []map[string]any
}

// Server is a fake API listening on a local httptest server.
type Server struct {
	*httptest.Server

	APIKey     string
	DatabaseID string

	mu       sync.Mutex
	pages    []*page
	failing  map[string]bool
	tooLarge bool
	clock    time.Time
	creates  int
}

func New(apiKey, databaseID string) *Server {
	s := &Server{
		APIKey:     apiKey,
		DatabaseID: databaseID,
		failing:    map[string]bool{},
		clock:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/pages", s.createPage)
	mux.HandleFunc("PATCH /v1/pages/{id}", s.updatePage)
	mux.HandleFunc("POST /v1/databases/{id}/query", s.queryDatabase)
	mux.HandleFunc("GET /v1/blocks/{id}/children", s.listChildren)

	s.Server = httptest.NewServer(s.authorize(mux))

	return s
}

// BaseURL is the API root to configure clients with.
func (s *Server) BaseURL() string {
	return s.URL + "/v1"
}

// FailBlocks makes every children listing of pageID fail.
func (s *Server) FailBlocks(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[pageID] = true
}

// RejectPayloadTooLarge makes page creation answer 413.
func (s *Server) RejectPayloadTooLarge(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooLarge = reject
}

// CreateCount is the number of pages created so far, seeded ones included.
func (s *Server) CreateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creates
}

// Seed stores a page titled title under the "Name" property with the
// given raw children and returns its id.
func (s *Server) Seed(title string, children ...map[string]any) string {
	props, _ := json.Marshal(map[string]any{
		"Name": map[string]any{
			"type": "title",
			"title": []any{map[string]any{
				"type":       "text",
				"text":       map[string]any{"content": title},
				"plain_text": title,
			}},
		},
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store(props, children).id
}

// Archived reports whether the page was archived.
func (s *Server) Archived(pageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(pageID)

	return p != nil && p.archived
}

// Children returns the stored children of a page.
func (s *Server) Children(pageID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(pageID)
	if p == nil {
		return nil
	}

	return append([]map[string]any(nil), p.children...)
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.APIKey {
			writeError(w, http.StatusUnauthorized, "unauthorized", "API token is invalid.")

			return
		}
		if r.Header.Get("Notion-Version") == "" {
			writeError(w, http.StatusBadRequest, "missing_version", "Notion-Version header failed validation.")

			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) store(properties json.RawMessage, children []map[string]any) *page {
	s.clock = s.clock.Add(time.Minute)
	s.creates++

	p := &page{
		id:         uuid.NewString(),
		created:    s.clock,
		properties: properties,
	}
	for _, c := range children {
		child := make(map[string]any, len(c)+2)
		for k, v := range c {
			child[k] = v
		}
		child["object"] = "block"
		child["id"] = uuid.NewString()
		p.children = append(p.children, child)
	}
	s.pages = append(s.pages, p)

	return p
}

func (s *Server) find(id string) *page {
	for _, p := range s.pages {
		if p.id == id {
			return p
		}
	}

	return nil
}

func (s *Server) createPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Parent struct {
			DatabaseID string `json:"database_id"`
		} `json:"parent"`
		Properties json.RawMessage  `json:"properties"`
		Children   []map[string]any `json:"children"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tooLarge {
		writeError(w, http.StatusRequestEntityTooLarge, "request_entity_too_large", "Request body too large.")

		return
	}
	if req.Parent.DatabaseID != s.DatabaseID {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find database.")

		return
	}

	p := s.store(req.Properties, req.Children)
	writeJSON(w, http.StatusOK, s.pageJSON(p))
}

func (s *Server) updatePage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(r.PathValue("id"))
	if p == nil {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find page.")

		return
	}
	p.archived = req.Archived
	writeJSON(w, http.StatusOK, s.pageJSON(p))
}

func (s *Server) queryDatabase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartCursor string `json:"start_cursor"`
		PageSize    int    `json:"page_size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.PathValue("id") != s.DatabaseID {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find database.")

		return
	}

	live := make([]*page, 0, len(s.pages))
	for _, p := range s.pages {
		if !p.archived {
			live = append(live, p)
		}
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].created.After(live[j].created) })

	start := 0
	if req.StartCursor != "" {
		start = len(live)
		for i, p := range live {
			if p.id == req.StartCursor {
				start = i

				break
			}
		}
	}

	end, next := window(start, req.PageSize, len(live))
	results := make([]any, 0, end-start)
	for _, p := range live[start:end] {
		results = append(results, s.pageJSON(p))
	}

	var cursor any
	if next {
		cursor = live[end].id
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"object":      "list",
		"results":     results,
		"has_more":    next,
		"next_cursor": cursor,
	})
}

func (s *Server) listChildren(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	if s.failing[id] {
		writeError(w, http.StatusInternalServerError, "internal_server_error", "Unexpected error.")

		return
	}

	p := s.find(id)
	if p == nil {
		writeError(w, http.StatusNotFound, "object_not_found", "Could not find block.")

		return
	}

	start, _ := strconv.Atoi(r.URL.Query().Get("start_cursor"))
	if start < 0 || start > len(p.children) {
		start = len(p.children)
	}
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	end, next := window(start, size, len(p.children))
	var cursor any
	if next {
		cursor = strconv.Itoa(end)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"object":      "list",
		"results":     p.children[start:end],
		"has_more":    next,
		"next_cursor": cursor,
	})
}

func (s *Server) pageJSON(p *page) map[string]any {
	props := p.properties
	if len(props) == 0 {
		props = json.RawMessage("{}")
	}

	return map[string]any{
		"object":       "page",
		"id":           p.id,
		"created_time": p.created.Format("2006-01-02T15:04:05.000Z07:00"),
		"archived":     p.archived,
		"properties":   props,
	}
}

func window(start, size, total int) (int, bool) {
	if size <= 0 || size > defaultPageSize {
		size = defaultPageSize
	}

	end := start + size
	if end >= total {
		return total, false
	}

	return end, true
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]any{
		"object":  "error",
		"status":  status,
		"code":    code,
		"message": msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
