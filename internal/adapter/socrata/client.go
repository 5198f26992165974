package socrata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
)

// Client implements domain.Finder against the Medicare SODA datasets.
// It issues exactly one GET per call and never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string // contains a {} slot for the data-source key
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a SODA client. baseURL is a pattern such as
// domain.DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// FindFacilities returns the records matching a city name or postal code.
func (c *Client) FindFacilities(ctx context.Context, cat domain.Category, location string) ([]domain.RawRecord, error) {
	term := domain.ClassifyTerm(location)
	path := domain.SearchPath(c.baseURL, cat, term)
	c.logger.Debug("facility search", "category", cat.String(), "term_kind", term.Kind.String(), "url", path)

	return c.doRequest(ctx, cat, path, "search")
}

// FindByIdentifier returns the first record with the given provider
// identifier, or domain.ErrNotFound when the dataset has none.
func (c *Client) FindByIdentifier(ctx context.Context, cat domain.Category, id string) (domain.RawRecord, error) {
	path := domain.IdentifierPath(c.baseURL, cat, id)
	c.logger.Debug("facility identifier lookup", "category", cat.String(), "url", path)

	records, err := c.doRequest(ctx, cat, path, "identifier")
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s %q: %w", cat, id, domain.ErrNotFound)
	}
	return records[0], nil
}

func (c *Client) doRequest(ctx context.Context, cat domain.Category, fullURL, method string) ([]domain.RawRecord, error) {
	start := c.clock.Now()
	records, err := c.fetch(ctx, fullURL)
	c.metrics.UpstreamDuration.WithLabelValues(cat.String(), method).Observe(c.clock.Since(start).Seconds())

	outcome := "success"
	switch {
	case err != nil:
		outcome = "error"
	case len(records) == 0:
		outcome = "empty"
	}
	c.metrics.UpstreamRequests.WithLabelValues(cat.String(), method, outcome).Inc()

	return records, err
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrTransport, resp.StatusCode, bytes.TrimSpace(body))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var records []domain.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	return records, nil
}
