package client

import (
	"net/url"
	"strings"
)

const (
	// BackendURLEnv overrides every other way of finding the bridge.
	BackendURLEnv     = "MEDIABRIDGE_BACKEND_URL"
	DefaultBackendURL = "http://localhost:3001"
)

// ResolveBaseURL picks the bridge address for a client served from
// location. Inside a github.dev workspace the client and the bridge share a
// host name that differs only in the forwarded port.
func ResolveBaseURL(getenv func(string) string, location *url.URL) string {
	if getenv != nil {
		if v := strings.TrimSpace(getenv(BackendURLEnv)); v != "" {
			return strings.TrimRight(v, "/")
		}
	}

	if location != nil && strings.Contains(location.Hostname(), "github.dev") {
		scheme := location.Scheme
		if scheme == "" {
			scheme = "https"
		}

		return scheme + "://" + strings.Replace(location.Host, "-3000.", "-3001.", 1)
	}

	return DefaultBackendURL
}
