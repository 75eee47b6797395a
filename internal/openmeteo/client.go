// Package openmeteo implements clients for the Open-Meteo geocoding and
// forecast APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mivanou/weather-dashboard-api/internal/config"
	"github.com/mivanou/weather-dashboard-api/internal/model"
)

// hourlyFields is the field list requested for both the current block and
// the hourly series.
const hourlyFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,precipitation,pressure_msl,weather_code"

// Client talks to the Open-Meteo geocoding and forecast endpoints.
type Client struct {
	forecastBaseURL string
	geocodingURL    string
	forecastDays    int
	httpClient      *http.Client
	logger          *zap.Logger
}

// NewClient creates an Open-Meteo client from upstream config.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		forecastBaseURL: strings.TrimRight(cfg.ForecastBaseURL, "/"),
		geocodingURL:    cfg.GeocodingURL,
		forecastDays:    cfg.ForecastDays,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		logger:          logger,
	}
}

// ResolveCity resolves a free-text city name to its best-match coordinates.
// Zero results and upstream failures both yield (nil, nil): callers cannot
// distinguish an unknown city from a provider outage, matching the
// behavior the API has always had. Failures are logged before being
// collapsed.
func (c *Client) ResolveCity(ctx context.Context, city string) (*model.Coordinates, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodingURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocoding request failed", zap.String("city", city), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoding returned non-200 status",
			zap.String("city", city), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var payload geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("Failed to decode geocoding response", zap.String("city", city), zap.Error(err))
		return nil, nil
	}

	if len(payload.Results) == 0 {
		return nil, nil
	}

	r := payload.Results[0]
	return &model.Coordinates{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Name:      r.Name,
		Country:   r.Country,
	}, nil
}

// Forecast fetches the current weather block and the hourly forecast
// series for the configured number of days.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*ForecastPayload, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", hourlyFields)
	params.Set("hourly", hourlyFields)
	params.Set("forecast_days", strconv.Itoa(c.forecastDays))

	u := fmt.Sprintf("%s/forecast?%s", c.forecastBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast returned status %d", resp.StatusCode)
	}

	var payload ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("forecast response: %w", err)
	}

	return &payload, nil
}

// Geocoding API response types.

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
}
