package model

import "time"

// Coordinates is the result of geocoding a city name.
// It lives only for the duration of a single request and is never persisted.
type Coordinates struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

// WeatherReading is the normalized current-instant weather for a location.
// Description and Icon are always derived from WeatherCode; Timestamp is
// the normalization time, not anything reported by the upstream provider.
type WeatherReading struct {
	Source        string    `json:"source"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	Precipitation float64   `json:"precipitation"`
	Pressure      float64   `json:"pressure"`
	WeatherCode   int       `json:"weather_code"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Timestamp     time.Time `json:"timestamp"`
}

// ForecastEntry is one daily-sampled point of the hourly forecast series.
// Forecast entries are returned in live responses only and never stored.
type ForecastEntry struct {
	Date          string  `json:"date"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Pressure      float64 `json:"pressure"`
	WeatherCode   int     `json:"weather_code"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

// WeatherRecord is a persisted WeatherReading row in the weather_data table.
type WeatherRecord struct {
	ID            int64     `json:"id" db:"id"`
	Source        string    `json:"source" db:"source"`
	Temperature   float64   `json:"temperature" db:"temperature"`
	Humidity      float64   `json:"humidity" db:"humidity"`
	WindSpeed     float64   `json:"wind_speed" db:"wind_speed"`
	Precipitation float64   `json:"precipitation" db:"precipitation"`
	Pressure      float64   `json:"pressure" db:"pressure"`
	WeatherCode   int       `json:"weather_code" db:"weather_code"`
	Description   string    `json:"description" db:"description"`
	Icon          string    `json:"icon" db:"icon"`
	Location      string    `json:"location" db:"location"`
	Latitude      float64   `json:"latitude" db:"latitude"`
	Longitude     float64   `json:"longitude" db:"longitude"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// Record projects a reading into its durable form. The ID is assigned by
// the database on insert.
func (r WeatherReading) Record() WeatherRecord {
	return WeatherRecord{
		Source:        r.Source,
		Temperature:   r.Temperature,
		Humidity:      r.Humidity,
		WindSpeed:     r.WindSpeed,
		Precipitation: r.Precipitation,
		Pressure:      r.Pressure,
		WeatherCode:   r.WeatherCode,
		Description:   r.Description,
		Icon:          r.Icon,
		Location:      r.Location,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Timestamp:     r.Timestamp,
	}
}
