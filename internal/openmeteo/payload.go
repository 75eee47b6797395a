package openmeteo

import "fmt"

// ForecastPayload is the decoded /v1/forecast response.
type ForecastPayload struct {
	Current *CurrentBlock `json:"current"`
	Hourly  HourlyBlock   `json:"hourly"`
}

// CurrentBlock holds the current-instant observation fields.
type CurrentBlock struct {
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	Precipitation float64 `json:"precipitation"`
	Pressure      float64 `json:"pressure_msl"`
	WeatherCode   int     `json:"weather_code"`
}

// HourlyBlock holds parallel arrays keyed by field name, one value per
// hourly sample, aligned with Time.
type HourlyBlock struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Humidity      []float64 `json:"relative_humidity_2m"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
	Precipitation []float64 `json:"precipitation"`
	Pressure      []float64 `json:"pressure_msl"`
	WeatherCode   []int     `json:"weather_code"`
}

// Validate checks that the required blocks are present and the hourly
// arrays are aligned, so downstream indexing cannot go out of bounds.
func (p *ForecastPayload) Validate() error {
	if p.Current == nil {
		return fmt.Errorf("missing current block")
	}

	n := len(p.Hourly.Time)
	fields := map[string]int{
		"temperature_2m":       len(p.Hourly.Temperature),
		"relative_humidity_2m": len(p.Hourly.Humidity),
		"wind_speed_10m":       len(p.Hourly.WindSpeed),
		"precipitation":        len(p.Hourly.Precipitation),
		"pressure_msl":         len(p.Hourly.Pressure),
		"weather_code":         len(p.Hourly.WeatherCode),
	}
	for name, l := range fields {
		if l != n {
			return fmt.Errorf("hourly field %s has %d samples, time has %d", name, l, n)
		}
	}
	return nil
}
