package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mivanou/weather-dashboard-api/internal/model"
)

type sqliteWeatherRepository struct {
	db *sqlx.DB
}

func (r *sqliteWeatherRepository) InsertReading(ctx context.Context, record model.WeatherRecord) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO weather_data (
			source, temperature, humidity, wind_speed, precipitation, pressure,
			weather_code, description, icon, location, latitude, longitude, timestamp
		) VALUES (
			:source, :temperature, :humidity, :wind_speed, :precipitation, :pressure,
			:weather_code, :description, :icon, :location, :latitude, :longitude, :timestamp
		)`,
		record)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqliteWeatherRepository) FindRecentByLocation(ctx context.Context, fragment string, limit int) ([]model.WeatherRecord, error) {
	// SQLite LIKE is case-insensitive for ASCII, matching the historical
	// lookup behavior of the API.
	q := `
		SELECT * FROM weather_data
		WHERE location LIKE '%' || ? || '%'
		ORDER BY timestamp DESC
		LIMIT ?
	`
	records := []model.WeatherRecord{}
	if err := r.db.SelectContext(ctx, &records, q, fragment, limit); err != nil {
		return nil, err
	}
	return records, nil
}
