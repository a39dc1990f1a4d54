// Package weather resolves free-text city phrases to provider locations and
// fetches current conditions, falling back from the primary provider to a
// secondary one when the primary fails or is not configured.
package weather

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Report is the flat record extracted from a provider's current-conditions
// response. Numeric fields are pointers so a value the provider omitted can be
// told apart from a real zero.
type Report struct {
	City        string     `json:"city"`
	Condition   string     `json:"condition"`
	Temperature *float64   `json:"temperature"`
	RealFeel    *float64   `json:"real_feel"`
	Humidity    *int       `json:"humidity"`
	WindSpeed   *float64   `json:"wind"`
	WindUnit    string     `json:"wind_unit"`
	Provider    string     `json:"provider"`
	ObservedAt  time.Time  `json:"observed_at"`
}

// Format renders the report as the text block shown to users and fed to the
// recommendation engine. Missing values render as N/A.
func (r *Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Current Conditions in %s ===\n", titleCase(r.City))
	fmt.Fprintf(&b, "• Condition: %s\n", orNA(r.Condition))
	fmt.Fprintf(&b, "• Temperature: %s°C\n", formatFloat(r.Temperature))
	fmt.Fprintf(&b, "• Real Feel: %s°C\n", formatFloat(r.RealFeel))
	fmt.Fprintf(&b, "• Humidity: %s%%\n", formatInt(r.Humidity))
	fmt.Fprintf(&b, "• Wind: %s %s", formatFloat(r.WindSpeed), windUnitOrDefault(r.WindUnit))
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func windUnitOrDefault(unit string) string {
	if unit == "" {
		return "km/h"
	}
	return unit
}

// titleCase uppercases the first letter of each word so "new york" renders as
// "New York" in the report header.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
