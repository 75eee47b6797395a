package api

import (
	"github.com/gorilla/mux"

	"github.com/mivanou/weather-dashboard-api/internal/service"
	"github.com/mivanou/weather-dashboard-api/internal/stats"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(service)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	router.HandleFunc("/", handler.Root).Methods("GET")

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	weather := router.PathPrefix("/api/weather").Subrouter()
	weather.HandleFunc("/current", handler.GetCurrentWeather).Methods("GET")
	weather.HandleFunc("/historical", handler.GetHistoricalWeather).Methods("GET")
	weather.HandleFunc("/sources", handler.GetWeatherSources).Methods("GET")
	weather.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	router.HandleFunc("/api/sources/", handler.GetSources).Methods("GET")

	return router
}
