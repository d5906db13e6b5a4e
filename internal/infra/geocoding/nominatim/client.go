package nominatim

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"koerplan/config"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Client queries a Nominatim-compatible /search endpoint
type Client struct {
	baseURL      string
	countryCodes string
	limit        int
	userAgent    string

	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a geocoding client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	gc := cfg.Geocoder

	return &Client{
		baseURL:      strings.TrimRight(gc.BaseURL, "/"),
		countryCodes: gc.CountryCodes,
		limit:        gc.Limit,
		userAgent:    gc.UserAgent,
		httpClient:   &http.Client{Timeout: gc.Timeout},
		limiter:      rate.NewLimiter(rate.Limit(gc.RequestsPerSecond), 1),
		logger:       logger,
	}
}

// Search returns the candidates for query, best match first
func (c *Client) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.SearchResult{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "geocoder rate limit"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query), nil)
	if err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "build geocoder request"))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocoder request failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "geocoder request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoder returned non-OK status",
			slog.String("query", query),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Errorf("geocoder HTTP status %d", resp.StatusCode))
	}

	var results []entity.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "decode geocoder response"))
	}

	if results == nil {
		results = []entity.SearchResult{}
	}

	c.logger.Debug("Geocoder search completed",
		slog.String("query", query),
		slog.Int("candidates", len(results)),
	)

	return results, nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(c.limit))
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	return c.baseURL + "/search?" + params.Encode()
}
