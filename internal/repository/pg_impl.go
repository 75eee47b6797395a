package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mivanou/weather-dashboard-api/internal/model"
)

type pgWeatherRepository struct {
	db *sqlx.DB
}

func (r *pgWeatherRepository) InsertReading(ctx context.Context, record model.WeatherRecord) (int64, error) {
	q := `
		INSERT INTO weather_data (
			source, temperature, humidity, wind_speed, precipitation, pressure,
			weather_code, description, icon, location, latitude, longitude, timestamp
		) VALUES (
			:source, :temperature, :humidity, :wind_speed, :precipitation, :pressure,
			:weather_code, :description, :icon, :location, :latitude, :longitude, :timestamp
		) RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, q, record)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
	}
	return id, rows.Err()
}

func (r *pgWeatherRepository) FindRecentByLocation(ctx context.Context, fragment string, limit int) ([]model.WeatherRecord, error) {
	q := `
		SELECT * FROM weather_data
		WHERE location ILIKE '%' || $1 || '%'
		ORDER BY timestamp DESC
		LIMIT $2
	`
	records := []model.WeatherRecord{}
	if err := r.db.SelectContext(ctx, &records, q, fragment, limit); err != nil {
		return nil, err
	}
	return records, nil
}
