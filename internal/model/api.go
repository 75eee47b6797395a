package model

// WeatherResponse is the body of GET /api/weather/current.
type WeatherResponse struct {
	Current  WeatherReading  `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
}

// SourcesResponse is the body of GET /api/sources/.
type SourcesResponse struct {
	Sources     []string `json:"sources"`
	Description string   `json:"description"`
}

// ErrorResponse mirrors the {"detail": "..."} error shape of the API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WelcomeResponse is the root endpoint payload.
type WelcomeResponse struct {
	Message string `json:"message"`
}
