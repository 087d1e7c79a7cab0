// Package hum estimates the local mains-power frequency so pitch reports
// can flag clips that look like hum pickup rather than voice.
package hum

import (
	"math"
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Tolerance is how close (Hz) an estimated pitch must sit to the hum
// fundamental or its second harmonic to be flagged as probable hum.
const Tolerance = 3.0

// Frequency returns the local mains frequency in Hz (50 or 60).
// Returns 50 if detection fails or the timezone is ambiguous.
func Frequency() float64 {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return FrequencyForTimezone(timezone)
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone.
// Exported for testing with specific timezones.
func FrequencyForTimezone(timezone string) float64 {
	// UTC/GMT have no country association; default to 50Hz.
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}
	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	// Japan is split 50/60Hz by region; the 50Hz Tokyo side is most
	// populous, so default there.
	if country == "Japan" {
		return 50
	}
	if sixtyHzCountries[country] {
		return 60
	}
	return 50
}

// Near reports whether pitchHz sits within Tolerance of the hum fundamental
// or its second harmonic. A zero (undetermined) pitch is never near hum.
func Near(pitchHz, mainsHz float64) bool {
	if pitchHz <= 0 {
		return false
	}
	return math.Abs(pitchHz-mainsHz) <= Tolerance || math.Abs(pitchHz-2*mainsHz) <= Tolerance
}

// sixtyHzCountries lists countries on 60Hz mains power; everywhere else
// uses 50Hz. Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var sixtyHzCountries = map[string]bool{
	// North and Central America
	"United States": true,
	"Canada":        true,
	"Mexico":        true,
	"Belize":        true,
	"Costa Rica":    true,
	"El Salvador":   true,
	"Guatemala":     true,
	"Honduras":      true,
	"Nicaragua":     true,
	"Panama":        true,

	// Caribbean
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	// South America (partial; most of the continent is 50Hz)
	"Brazil":    true,
	"Colombia":  true,
	"Ecuador":   true,
	"Guyana":    true,
	"Peru":      true,
	"Suriname":  true,
	"Venezuela": true,

	// Asia (partial)
	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	// Pacific
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
