package service

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/mivanou/weather-dashboard-api/internal/model"
	"github.com/mivanou/weather-dashboard-api/internal/openmeteo"
	"github.com/mivanou/weather-dashboard-api/internal/repository"
)

const sourceOpenMeteo = "openmeteo"

// Geocoder resolves a free-text city name to coordinates. A nil result
// with a nil error means no match.
type Geocoder interface {
	ResolveCity(ctx context.Context, city string) (*model.Coordinates, error)
}

// ForecastFetcher retrieves the current and hourly weather at coordinates.
type ForecastFetcher interface {
	Forecast(ctx context.Context, lat, lon float64) (*openmeteo.ForecastPayload, error)
}

// Service provides business logic for the API. It holds no per-request
// state and is shared read-only across concurrent handlers.
type Service struct {
	geocoder    Geocoder
	fetcher     ForecastFetcher
	weatherRepo repository.WeatherRepository
	clock       clockwork.Clock
	logger      *zap.Logger
}

// NewService creates a new service instance
func NewService(
	geocoder Geocoder,
	fetcher ForecastFetcher,
	weatherRepo repository.WeatherRepository,
	clock clockwork.Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		geocoder:    geocoder,
		fetcher:     fetcher,
		weatherRepo: weatherRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Sources returns the list of known weather data source identifiers.
func (s *Service) Sources() []string {
	return []string{sourceOpenMeteo}
}
