package weather

import (
	"strings"
	"testing"
)

func TestReportFormat(t *testing.T) {
	temp := 25.5
	feel := 27.0
	humidity := 60
	wind := 15.2
	r := &Report{
		City:        "new york",
		Condition:   "Partly cloudy",
		Temperature: &temp,
		RealFeel:    &feel,
		Humidity:    &humidity,
		WindSpeed:   &wind,
		WindUnit:    "km/h",
	}

	got := r.Format()
	want := "=== Current Conditions in New York ===\n" +
		"• Condition: Partly cloudy\n" +
		"• Temperature: 25.5°C\n" +
		"• Real Feel: 27°C\n" +
		"• Humidity: 60%\n" +
		"• Wind: 15.2 km/h"
	if got != want {
		t.Errorf("Format() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportFormatMissingFields(t *testing.T) {
	r := &Report{City: "madrid"}

	got := r.Format()
	for _, want := range []string{
		"• Condition: N/A",
		"• Temperature: N/A°C",
		"• Real Feel: N/A°C",
		"• Humidity: N/A%",
		"• Wind: N/A km/h",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() missing %q in:\n%s", want, got)
		}
	}
}
