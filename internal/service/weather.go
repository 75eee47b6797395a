package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mivanou/weather-dashboard-api/internal/model"
	"github.com/mivanou/weather-dashboard-api/internal/openmeteo"
	"github.com/mivanou/weather-dashboard-api/internal/weathercode"
)

const (
	// historyLimit caps how many persisted readings a historical query returns.
	historyLimit = 10
	// hourlyStride samples the hourly series once per day boundary.
	hourlyStride = 24
)

// Scrape geocodes a city, fetches its weather, normalizes the result and
// persists the current reading. A nil response with a nil error means the
// city could not be resolved (or the provider was unreachable, which is
// deliberately indistinguishable); nothing is persisted in that case.
func (s *Service) Scrape(ctx context.Context, city string) (*model.WeatherResponse, error) {
	coords, err := s.geocoder.ResolveCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode city: %w", err)
	}
	if coords == nil {
		return nil, nil
	}

	payload, err := s.fetcher.Forecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("Forecast fetch failed",
			zap.String("city", city),
			zap.Float64("lat", coords.Latitude),
			zap.Float64("lon", coords.Longitude),
			zap.Error(err))
		return nil, nil
	}

	current := s.buildCurrentReading(coords, payload.Current)
	forecast := buildForecast(payload.Hourly)

	if _, err := s.weatherRepo.InsertReading(ctx, current.Record()); err != nil {
		return nil, fmt.Errorf("failed to store weather reading: %w", err)
	}

	return &model.WeatherResponse{
		Current:  current,
		Forecast: forecast,
	}, nil
}

// Historical returns up to 10 persisted readings whose location contains
// the city fragment, newest first.
func (s *Service) Historical(ctx context.Context, city string) ([]model.WeatherRecord, error) {
	records, err := s.weatherRepo.FindRecentByLocation(ctx, city, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather history: %w", err)
	}
	return records, nil
}

func (s *Service) buildCurrentReading(coords *model.Coordinates, current *openmeteo.CurrentBlock) model.WeatherReading {
	return model.WeatherReading{
		Source:        sourceOpenMeteo,
		Temperature:   current.Temperature,
		Humidity:      current.Humidity,
		WindSpeed:     current.WindSpeed,
		Precipitation: current.Precipitation,
		Pressure:      current.Pressure,
		WeatherCode:   current.WeatherCode,
		Description:   weathercode.Describe(current.WeatherCode),
		Icon:          weathercode.Icon(current.WeatherCode),
		Location:      fmt.Sprintf("%s, %s", coords.Name, coords.Country),
		Latitude:      coords.Latitude,
		Longitude:     coords.Longitude,
		// Normalization time, never the provider's observation time.
		Timestamp: s.clock.Now().UTC(),
	}
}

// buildForecast samples the hourly series at every 24th entry starting at
// index 0, producing one entry per day boundary.
func buildForecast(hourly openmeteo.HourlyBlock) []model.ForecastEntry {
	forecast := make([]model.ForecastEntry, 0, (len(hourly.Time)+hourlyStride-1)/hourlyStride)
	for i := 0; i < len(hourly.Time); i += hourlyStride {
		forecast = append(forecast, model.ForecastEntry{
			Date:          hourly.Time[i],
			Temperature:   hourly.Temperature[i],
			Humidity:      hourly.Humidity[i],
			WindSpeed:     hourly.WindSpeed[i],
			Precipitation: hourly.Precipitation[i],
			Pressure:      hourly.Pressure[i],
			WeatherCode:   hourly.WeatherCode[i],
			Description:   weathercode.Describe(hourly.WeatherCode[i]),
			Icon:          weathercode.Icon(hourly.WeatherCode[i]),
		})
	}
	return forecast
}
