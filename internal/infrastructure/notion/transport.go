package notion

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxErrorBody = 64 << 10

// apiTransport points the SDK, which always targets the public API host,
// at the configured base URL. Error responses without a JSON body are
// rewritten into an error object so that their status survives decoding.
type apiTransport struct {
	next   http.RoundTripper
	target *url.URL
}

func newTransport(next http.RoundTripper, baseURL string) (*apiTransport, error) {
	if next == nil {
		next = http.DefaultTransport
	}

	t := &apiTransport{next: next}
	if baseURL == DefaultBaseURL {
		return t, nil
	}

	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	t.target = target

	return t, nil
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.target != nil {
		req = req.Clone(req.Context())
		req.URL.Scheme = t.target.Scheme
		req.URL.Host = t.target.Host
		req.URL.Path = strings.TrimRight(t.target.Path, "/") + strings.TrimPrefix(req.URL.Path, "/v1")
		req.URL.RawPath = ""
		req.Host = t.target.Host
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode == http.StatusOK ||
		strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return resp, err
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	payload, err := json.Marshal(map[string]any{
		"object":  "error",
		"status":  resp.StatusCode,
		"message": msg,
	})
	if err != nil {
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(payload))
	resp.ContentLength = int64(len(payload))
	resp.Header.Set("Content-Type", "application/json")

	return resp, nil
}
