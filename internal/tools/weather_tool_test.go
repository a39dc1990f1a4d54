package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmbarreiro1/mcp-weather/internal/weather"
)

type fakeWeatherService struct {
	report   *weather.Report
	err      error
	lastCity string
}

func (f *fakeWeatherService) Current(_ context.Context, city string) (*weather.Report, error) {
	f.lastCity = city
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestWeatherToolDefinition(t *testing.T) {
	tool := NewWeatherTool(&fakeWeatherService{})
	def := tool.Definition()

	assert.Equal(t, "get_weather", def.Function.Name)
	assert.Contains(t, def.Function.Parameters.Properties, "city")
	assert.Equal(t, []string{"city"}, def.Function.Parameters.Required)
}

func TestWeatherToolExecute(t *testing.T) {
	svc := &fakeWeatherService{
		report: &weather.Report{
			City:        "madrid",
			Condition:   "Sunny",
			Temperature: floatPtr(25),
		},
	}
	tool := NewWeatherTool(svc)

	out, err := tool.Execute(context.Background(), `{"city":"Madrid"}`)
	require.NoError(t, err)
	assert.Equal(t, "Madrid", svc.lastCity)
	assert.Contains(t, out, "Current Conditions in Madrid")
	assert.Contains(t, out, "Condition: Sunny")
}

func TestWeatherToolEmptyCity(t *testing.T) {
	svc := &fakeWeatherService{err: weather.ErrEmptyCity}
	tool := NewWeatherTool(svc)

	out, err := tool.Execute(context.Background(), `{"city":""}`)
	require.NoError(t, err)
	assert.Equal(t, "Please provide a city name.", out)
}

func TestWeatherToolLookupFailure(t *testing.T) {
	svc := &fakeWeatherService{
		err: &weather.LookupError{
			City: "Atlantis",
			Causes: []*weather.ProviderError{
				{Provider: "accuweather", Err: weather.ErrLocationNotFound},
			},
		},
	}
	tool := NewWeatherTool(svc)

	out, err := tool.Execute(context.Background(), `{"city":"Atlantis"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `Could not find weather for "Atlantis"`)
}

func TestWeatherToolBadArguments(t *testing.T) {
	tool := NewWeatherTool(&fakeWeatherService{})
	_, err := tool.Execute(context.Background(), `not json`)
	require.Error(t, err)
}
