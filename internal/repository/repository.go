package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mivanou/weather-dashboard-api/internal/config"
	"github.com/mivanou/weather-dashboard-api/internal/model"
)

// WeatherRepository defines operations on persisted weather readings.
// Readings are append-only: rows are never updated or deleted.
type WeatherRepository interface {
	InsertReading(ctx context.Context, record model.WeatherRecord) (int64, error)
	FindRecentByLocation(ctx context.Context, fragment string, limit int) ([]model.WeatherRecord, error)
}

// Container holds all repositories
type Container struct {
	Weather WeatherRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			Weather: &pgWeatherRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		Weather: &sqliteWeatherRepository{db: db},
	}
}
