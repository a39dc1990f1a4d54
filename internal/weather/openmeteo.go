package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	openMeteoGeocodingURL = "https://geocoding-api.open-meteo.com"
	openMeteoForecastURL  = "https://api.open-meteo.com"
)

// OpenMeteo is the fallback provider. Open-Meteo needs no API key, which
// makes it a reliable second leg when the primary key is missing or the
// primary service is down. Conditions come back as WMO weather codes that are
// mapped to text here.
type OpenMeteo struct {
	geocodingURL string
	forecastURL  string
	resolver     *Resolver
	httpClient   *http.Client
}

var _ Provider = (*OpenMeteo)(nil)

func NewOpenMeteo(resolver *Resolver) *OpenMeteo {
	return &OpenMeteo{
		geocodingURL: openMeteoGeocodingURL,
		forecastURL:  openMeteoForecastURL,
		resolver:     resolver,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOpenMeteoWithHTTP points the provider at custom endpoints for tests.
func NewOpenMeteoWithHTTP(resolver *Resolver, client *http.Client, geocodingURL, forecastURL string) *OpenMeteo {
	return &OpenMeteo{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		resolver:     resolver,
		httpClient:   client,
	}
}

func (o *OpenMeteo) Name() string { return "open-meteo" }

func (o *OpenMeteo) Current(ctx context.Context, city string) (*Report, error) {
	cleaned := o.resolver.Clean(city)
	if cleaned == "" {
		return nil, ErrEmptyCity
	}

	place, err := o.geocode(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	return o.currentConditions(ctx, place)
}

type openMeteoPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// geocode tries each search variant against the free geocoding API and
// returns the first match.
func (o *OpenMeteo) geocode(ctx context.Context, city string) (*openMeteoPlace, error) {
	for _, term := range o.resolver.Variants(city) {
		params := url.Values{}
		params.Set("name", term)
		params.Set("count", "1")
		endpoint := fmt.Sprintf("%s/v1/search?%s", o.geocodingURL, params.Encode())

		var result struct {
			Results []openMeteoPlace `json:"results"`
		}
		if err := o.getJSON(ctx, endpoint, &result); err != nil {
			return nil, fmt.Errorf("geocoding failed: %w", err)
		}
		if len(result.Results) > 0 {
			return &result.Results[0], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, city)
}

func (o *OpenMeteo) currentConditions(ctx context.Context, place *openMeteoPlace) (*Report, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", place.Latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", place.Longitude))
	params.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code")
	endpoint := fmt.Sprintf("%s/v1/forecast?%s", o.forecastURL, params.Encode())

	var result struct {
		Current struct {
			Time             string   `json:"time"`
			Temperature      *float64 `json:"temperature_2m"`
			ApparentTemp     *float64 `json:"apparent_temperature"`
			RelativeHumidity *int     `json:"relative_humidity_2m"`
			WindSpeed        *float64 `json:"wind_speed_10m"`
			WeatherCode      int      `json:"weather_code"`
		} `json:"current"`
		CurrentUnits struct {
			WindSpeed string `json:"wind_speed_10m"`
		} `json:"current_units"`
	}
	if err := o.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("forecast failed: %w", err)
	}

	report := &Report{
		City:        place.Name,
		Condition:   conditionFromWMOCode(result.Current.WeatherCode),
		Temperature: result.Current.Temperature,
		RealFeel:    result.Current.ApparentTemp,
		Humidity:    result.Current.RelativeHumidity,
		WindSpeed:   result.Current.WindSpeed,
		WindUnit:    result.CurrentUnits.WindSpeed,
		Provider:    o.Name(),
	}
	if t, err := time.Parse("2006-01-02T15:04", result.Current.Time); err == nil {
		report.ObservedAt = t
	}
	return report, nil
}

// wmoCodeRanges maps WMO weather interpretation codes to condition text. The
// text deliberately reuses the keywords the recommendation engine scans for.
var wmoCodeRanges = []struct {
	min, max  int
	condition string
}{
	{0, 0, "Clear sky"},
	{1, 2, "Partly cloudy"},
	{3, 3, "Overcast"},
	{45, 48, "Fog"},
	{51, 57, "Drizzle"},
	{61, 67, "Rain"},
	{71, 77, "Snow"},
	{80, 82, "Rain showers"},
	{85, 86, "Snow showers"},
	{95, 99, "Thunderstorm"},
}

func conditionFromWMOCode(code int) string {
	for _, r := range wmoCodeRanges {
		if code >= r.min && code <= r.max {
			return r.condition
		}
	}
	return "Unknown"
}

func (o *OpenMeteo) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
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
