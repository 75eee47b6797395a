// Package weathercode translates WMO weather codes reported by Open-Meteo
// into human-readable descriptions and icon glyphs.
package weathercode

// descriptions maps known WMO codes to display text. Frontends key their
// UI off these exact strings, so entries must not be reworded.
var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

var icons = map[int]string{
	0:  "☀️",
	1:  "🌤️",
	2:  "⛅",
	3:  "☁️",
	45: "🌫️",
	48: "🌫️",
	51: "🌦️",
	53: "🌦️",
	55: "🌧️",
	61: "🌧️",
	63: "🌧️",
	65: "🌧️",
	71: "🌨️",
	73: "🌨️",
	75: "🌨️",
	77: "🌨️",
	80: "🌧️",
	81: "🌧️",
	82: "🌧️",
	85: "🌨️",
	86: "🌨️",
	95: "⛈️",
	96: "⛈️",
	99: "⛈️",
}

const (
	unknownDescription = "Unknown"
	unknownIcon        = "❓"
)

// Describe returns the description for a weather code, or "Unknown" for
// codes outside the table.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return unknownDescription
}

// Icon returns the icon glyph for a weather code, or a placeholder for
// codes outside the table.
func Icon(code int) string {
	if i, ok := icons[code]; ok {
		return i
	}
	return unknownIcon
}
