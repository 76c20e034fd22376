// Package weather fetches current conditions from Open-Meteo and derives the
// short wardrobe advisory used in styling prompts. Weather is strictly
// best-effort context: every failure here degrades to "no weather", never to
// a request error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the per-request timeout for Open-Meteo calls.
const DefaultTimeout = 10 * time.Second

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Weather is the current-conditions snapshot for a city.
type Weather struct {
	City        string `json:"city"`
	Temp        int    `json:"temp"`
	FeelsLike   int    `json:"feels_like"`
	Humidity    int    `json:"humidity"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// Client calls the Open-Meteo geocoding and forecast APIs.
type Client struct {
	httpClient   *http.Client
	geocodingURL string
	forecastURL  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the API endpoints. Intended for tests.
func WithBaseURLs(geocoding, forecast string) Option {
	return func(c *Client) {
		c.geocodingURL = geocoding
		c.forecastURL = forecast
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a weather client with default endpoints and timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		geocodingURL: defaultGeocodingURL,
		forecastURL:  defaultForecastURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current resolves a city name and returns its current weather.
func (c *Client) Current(ctx context.Context, city string) (*Weather, error) {
	lat, lon, resolvedName, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	params.Set("timezone", "auto")

	var forecast forecastResponse
	if err := c.getJSON(ctx, c.forecastURL, params, &forecast); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", city, err)
	}

	condition, description := conditionForCode(forecast.Current.WeatherCode)
	temp := int(math.Round(forecast.Current.Temperature))

	return &Weather{
		City:        resolvedName,
		Temp:        temp,
		FeelsLike:   temp,
		Humidity:    forecast.Current.Humidity,
		Condition:   condition,
		Description: description,
	}, nil
}

// geocode resolves a city name to coordinates via the geocoding API.
func (c *Client) geocode(ctx context.Context, city string) (lat, lon float64, name string, err error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "en")

	var geo geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL, params, &geo); err != nil {
		return 0, 0, "", fmt.Errorf("failed to geocode %s: %w", city, err)
	}
	if len(geo.Results) == 0 {
		return 0, 0, "", fmt.Errorf("no geocoding results for %s", city)
	}

	loc := geo.Results[0]
	return loc.Latitude, loc.Longitude, loc.Name, nil
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// conditionForCode maps WMO weather codes to a coarse condition and a short
// human-readable description.
func conditionForCode(code int) (string, string) {
	switch code {
	case 0:
		return "Clear", "clear sky"
	case 1:
		return "Clear", "mainly clear"
	case 2:
		return "Clouds", "partly cloudy"
	case 3:
		return "Clouds", "overcast"
	case 45:
		return "Fog", "foggy"
	case 48:
		return "Fog", "rime fog"
	case 51:
		return "Drizzle", "light drizzle"
	case 53:
		return "Drizzle", "moderate drizzle"
	case 55:
		return "Drizzle", "dense drizzle"
	case 61:
		return "Rain", "slight rain"
	case 63:
		return "Rain", "moderate rain"
	case 65:
		return "Rain", "heavy rain"
	case 80:
		return "Rain", "rain showers"
	case 95:
		return "Thunderstorm", "thunderstorm"
	default:
		return "Unknown", "unknown"
	}
}
