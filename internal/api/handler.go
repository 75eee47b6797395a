package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mivanou/weather-dashboard-api/internal/model"
	"github.com/mivanou/weather-dashboard-api/internal/service"
)

// Handler handles HTTP requests
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCurrentWeather handles GET /api/weather/current
func (h *Handler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "query parameter 'city' is required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Scrape(r.Context(), city)
	if err != nil {
		log.Printf("Error scraping weather for %q: %v", city, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if response == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Detail: "Weather data not found"})
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// GetHistoricalWeather handles GET /api/weather/historical
func (h *Handler) GetHistoricalWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "query parameter 'city' is required", http.StatusBadRequest)
		return
	}

	records, err := h.service.Historical(r.Context(), city)
	if err != nil {
		log.Printf("Error querying weather history for %q: %v", city, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(records) == 0 {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Detail: "Historical weather data not found"})
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// GetWeatherSources handles GET /api/weather/sources
func (h *Handler) GetWeatherSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Sources())
}

// GetSources handles GET /api/sources/
func (h *Handler) GetSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.SourcesResponse{
		Sources:     h.service.Sources(),
		Description: "List of available weather data sources that can be used to fetch weather information",
	})
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.WelcomeResponse{Message: "Welcome to Weather Dashboard API"})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
