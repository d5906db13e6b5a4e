package osrm

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
)

const codeOK = "Ok"

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// Client calls the OSRM route service
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an OSRM routing client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) service.Router {
	rc := cfg.Router

	return &Client{
		baseURL:    strings.TrimRight(rc.BaseURL, "/"),
		profile:    rc.Profile,
		httpClient: &http.Client{Timeout: rc.Timeout},
		logger:     logger,
	}
}

// Route returns the first route through the waypoints
func (c *Client) Route(ctx context.Context, waypoints []entity.Coordinates) (*entity.RouteData, error) {
	if len(waypoints) < 2 {
		return nil, domainerrors.ErrRouteNotFound.WithDetails("at least two waypoints are required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(waypoints), nil)
	if err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "build route request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Route request failed", slog.Any("error", err))

		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(err, "route request"))
	}
	defer resp.Body.Close()

	var body routeResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	// OSRM answers unroutable requests with 400 and a code such as NoRoute.
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && body.Code != "" && body.Code != codeOK {
			return nil, c.noRoute(body)
		}
		c.logger.Warn("Route service returned non-OK status", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Errorf("route HTTP status %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(errors.Wrap(decodeErr, "decode route response"))
	}

	if body.Code != codeOK || len(body.Routes) == 0 {
		return nil, c.noRoute(body)
	}

	first := body.Routes[0]

	return &entity.RouteData{
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
		Geometry:        first.Geometry,
	}, nil
}

func (c *Client) noRoute(body routeResponse) error {
	c.logger.Debug("No route found",
		slog.String("code", body.Code),
		slog.String("message", body.Message),
	)

	return domainerrors.ErrRouteNotFound.WithDetails(strings.TrimSpace(body.Code + " " + body.Message))
}

func (c *Client) routeURL(waypoints []entity.Coordinates) string {
	coords := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		coords = append(coords,
			strconv.FormatFloat(wp.Lon, 'f', -1, 64)+","+strconv.FormatFloat(wp.Lat, 'f', -1, 64))
	}

	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "polyline")

	return c.baseURL + "/route/v1/" + c.profile + "/" + strings.Join(coords, ";") + "?" + params.Encode()
}
