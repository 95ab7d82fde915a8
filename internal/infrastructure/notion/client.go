package notion

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/jomei/notionapi"

	notionRepository "mediabridge/internal/domain/repository/notion"
)

// Client adapts the Notion SDK to the repository interfaces. It keeps no
// state between calls besides its configuration.
type Client struct {
	api *notionapi.Client
	cfg Config
}

func New(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("notion: api key is required")
	}
	if cfg.DatabaseID == "" {
		return nil, errors.New("notion: database id is required")
	}

	cfg.applyDefaults()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	transport, err := newTransport(httpClient.Transport, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	hc := *httpClient
	hc.Transport = transport

	return &Client{
		api: notionapi.NewClient(notionapi.Token(cfg.APIKey),
			notionapi.WithHTTPClient(&hc),
			notionapi.WithVersion(cfg.Version),
			// a rate limited call fails at once
			notionapi.WithRetry(1),
		),
		cfg: cfg,
	}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, time.Duration(c.cfg.Timeout)*time.Millisecond)
}

func (c *Client) fail(op string, err error) error {
	err = translateError(err)

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		logger.Error("notion request rejected", "op", op, "status", apiErr.Status, "code", apiErr.Code)
	} else {
		logger.Error("notion request failed", "op", op, "err", err)
	}

	return err
}

var (
	_ notionRepository.Writer    = (*Client)(nil)
	_ notionRepository.Lister    = (*Client)(nil)
	_ notionRepository.Retriever = (*Client)(nil)
	_ notionRepository.Remover   = (*Client)(nil)
)
