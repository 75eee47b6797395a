package openmeteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(geocodingURL, forecastBaseURL string) *Client {
	return &Client{
		forecastBaseURL: forecastBaseURL,
		geocodingURL:    geocodingURL,
		forecastDays:    3,
		httpClient:      &http.Client{Timeout: 5 * time.Second},
		logger:          zap.NewNop(),
	}
}

func TestClient_ResolveCity_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		resp := geocodingResponse{
			Results: []geocodingResult{
				{Latitude: 51.5085, Longitude: -0.1257, Name: "London", Country: "United Kingdom"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	coords, err := c.ResolveCity(context.Background(), "London")
	require.NoError(t, err)
	require.NotNil(t, coords)

	assert.Equal(t, 51.5085, coords.Latitude)
	assert.Equal(t, -0.1257, coords.Longitude)
	assert.Equal(t, "London", coords.Name)
	assert.Equal(t, "United Kingdom", coords.Country)
}

func TestClient_ResolveCity_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(geocodingResponse{}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	coords, err := c.ResolveCity(context.Background(), "Nonexistent City Name")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestClient_ResolveCity_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Upstream failures are collapsed into not-found, same as zero results.
	c := testClient(srv.URL, srv.URL)
	coords, err := c.ResolveCity(context.Background(), "London")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestClient_ResolveCity_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	coords, err := c.ResolveCity(context.Background(), "London")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func validForecastPayload() ForecastPayload {
	return ForecastPayload{
		Current: &CurrentBlock{
			Temperature:   12.5,
			Humidity:      81,
			WindSpeed:     14.2,
			Precipitation: 0.3,
			Pressure:      1012.4,
			WeatherCode:   61,
		},
		Hourly: HourlyBlock{
			Time:          []string{"2024-05-01T00:00", "2024-05-01T01:00"},
			Temperature:   []float64{10.1, 9.8},
			Humidity:      []float64{83, 85},
			WindSpeed:     []float64{12.0, 11.4},
			Precipitation: []float64{0.0, 0.1},
			Pressure:      []float64{1013.0, 1012.8},
			WeatherCode:   []int{3, 61},
		},
	}
}

func TestClient_Forecast_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "51.5085", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-0.1257", r.URL.Query().Get("longitude"))
		assert.Equal(t, hourlyFields, r.URL.Query().Get("current"))
		assert.Equal(t, hourlyFields, r.URL.Query().Get("hourly"))
		assert.Equal(t, "3", r.URL.Query().Get("forecast_days"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(validForecastPayload()))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	payload, err := c.Forecast(context.Background(), 51.5085, -0.1257)
	require.NoError(t, err)
	require.NotNil(t, payload)

	assert.Equal(t, 12.5, payload.Current.Temperature)
	assert.Equal(t, 61, payload.Current.WeatherCode)
	assert.Len(t, payload.Hourly.Time, 2)
}

func TestClient_Forecast_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.Forecast(context.Background(), 51.5, -0.12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Forecast_MissingCurrentBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		payload := validForecastPayload()
		payload.Current = nil
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.Forecast(context.Background(), 51.5, -0.12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing current block")
}

func TestClient_Forecast_MisalignedHourlyArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		payload := validForecastPayload()
		payload.Hourly.Pressure = payload.Hourly.Pressure[:1]
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.Forecast(context.Background(), 51.5, -0.12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pressure_msl")
}

func TestForecastPayload_Validate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := validForecastPayload()
		assert.NoError(t, payload.Validate())
	})

	t.Run("empty hourly series is valid", func(t *testing.T) {
		payload := ForecastPayload{Current: &CurrentBlock{}}
		assert.NoError(t, payload.Validate())
	})

	t.Run("missing current", func(t *testing.T) {
		payload := validForecastPayload()
		payload.Current = nil
		assert.Error(t, payload.Validate())
	})
}
