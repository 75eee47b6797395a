package service

import (
	"context"

	"github.com/mivanou/weather-dashboard-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	Scrape(ctx context.Context, city string) (*model.WeatherResponse, error)
	Historical(ctx context.Context, city string) ([]model.WeatherRecord, error)
	Sources() []string
}
