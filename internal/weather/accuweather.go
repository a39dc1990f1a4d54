package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const accuWeatherBaseURL = "http://dataservice.accuweather.com"

// The city search answers faster than the conditions endpoint and gets a
// tighter deadline.
const accuSearchTimeout = 10 * time.Second

// AccuWeather is the primary provider. AccuWeather requires a two-step lookup:
// a location key is obtained from the city search endpoint, then current
// conditions are requested for that key.
type AccuWeather struct {
	apiKey        string
	baseURL       string
	language      string
	resolver      *Resolver
	httpClient    *http.Client
	searchTimeout time.Duration
}

var _ Provider = (*AccuWeather)(nil)

// NewAccuWeather creates the provider with a dedicated HTTP client. The
// timeout keeps a slow upstream from hanging a whole request.
func NewAccuWeather(apiKey, language string, resolver *Resolver) *AccuWeather {
	return &AccuWeather{
		apiKey:        apiKey,
		baseURL:       accuWeatherBaseURL,
		language:      language,
		resolver:      resolver,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		searchTimeout: accuSearchTimeout,
	}
}

// NewAccuWeatherWithHTTP creates the provider against a custom HTTP client
// and base URL. Tests use this to point the provider at an httptest server.
func NewAccuWeatherWithHTTP(apiKey, language string, resolver *Resolver, client *http.Client, baseURL string) *AccuWeather {
	return &AccuWeather{
		apiKey:        apiKey,
		baseURL:       baseURL,
		language:      language,
		resolver:      resolver,
		httpClient:    client,
		searchTimeout: accuSearchTimeout,
	}
}

func (a *AccuWeather) Name() string { return "accuweather" }

// Current resolves the city to a location key and fetches its conditions.
func (a *AccuWeather) Current(ctx context.Context, city string) (*Report, error) {
	if a.apiKey == "" || a.apiKey == "your_api_key_here" {
		return nil, ErrNotConfigured
	}

	cleaned := a.resolver.Clean(city)
	if cleaned == "" {
		return nil, ErrEmptyCity
	}

	key, err := a.locationKey(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	conditions, err := a.currentConditions(ctx, key)
	if err != nil {
		return nil, err
	}
	return a.toReport(cleaned, conditions), nil
}

// locationKey returns the AccuWeather key for a cleaned city phrase. The
// manual override table is consulted first, then each search variant is tried
// against the city search endpoint until one returns a result.
func (a *AccuWeather) locationKey(ctx context.Context, city string) (string, error) {
	if key, ok := a.resolver.Override(city); ok {
		return key, nil
	}

	for _, term := range a.resolver.Variants(city) {
		key, err := a.searchCity(ctx, term)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLocationNotFound, city)
}

func (a *AccuWeather) searchCity(ctx context.Context, term string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.searchTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("apikey", a.apiKey)
	params.Set("q", term)
	params.Set("language", a.language)
	params.Set("details", "false")
	endpoint := fmt.Sprintf("%s/locations/v1/cities/search?%s", a.baseURL, params.Encode())

	var locations []struct {
		Key           string `json:"Key"`
		LocalizedName string `json:"LocalizedName"`
	}
	if err := a.getJSON(ctx, endpoint, &locations); err != nil {
		return "", fmt.Errorf("city search failed: %w", err)
	}
	if len(locations) == 0 {
		return "", nil
	}
	return locations[0].Key, nil
}

// accuConditions mirrors the fields extracted from the current-conditions
// payload; everything else in the response is ignored.
type accuConditions struct {
	WeatherText string `json:"WeatherText"`
	EpochTime   int64  `json:"EpochTime"`
	Temperature struct {
		Metric accuMetric `json:"Metric"`
	} `json:"Temperature"`
	RealFeelTemperature struct {
		Metric accuMetric `json:"Metric"`
	} `json:"RealFeelTemperature"`
	RelativeHumidity *int `json:"RelativeHumidity"`
	Wind             struct {
		Speed struct {
			Metric accuMetric `json:"Metric"`
		} `json:"Speed"`
	} `json:"Wind"`
}

type accuMetric struct {
	Value *float64 `json:"Value"`
	Unit  string   `json:"Unit"`
}

func (a *AccuWeather) currentConditions(ctx context.Context, key string) (*accuConditions, error) {
	params := url.Values{}
	params.Set("apikey", a.apiKey)
	params.Set("language", a.language)
	params.Set("details", "true")
	endpoint := fmt.Sprintf("%s/currentconditions/v1/%s?%s", a.baseURL, key, params.Encode())

	var payload []accuConditions
	if err := a.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("current conditions failed: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("no weather data returned for location %s", key)
	}
	return &payload[0], nil
}

func (a *AccuWeather) toReport(city string, c *accuConditions) *Report {
	report := &Report{
		City:        city,
		Condition:   c.WeatherText,
		Temperature: c.Temperature.Metric.Value,
		RealFeel:    c.RealFeelTemperature.Metric.Value,
		Humidity:    c.RelativeHumidity,
		WindSpeed:   c.Wind.Speed.Metric.Value,
		WindUnit:    c.Wind.Speed.Metric.Unit,
		Provider:    a.Name(),
	}
	if c.EpochTime > 0 {
		report.ObservedAt = time.Unix(c.EpochTime, 0).UTC()
	}
	return report
}

func (a *AccuWeather) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
