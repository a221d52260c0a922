// Package mains infers the local electrical mains frequency from the
// system timezone. Recordings that are almost but not quite silent very
// often carry nothing beyond 50/60 Hz hum picked up from power wiring, so
// the run summary names the locally plausible hum frequency when
// near-threshold files turn up.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// LocalFrequency returns the mains frequency in Hz for the machine's
// timezone. Falls back to 50 Hz, the more common frequency worldwide,
// when detection fails.
func LocalFrequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return ForTimezone(timezone)
}

// ForTimezone returns the mains frequency for an IANA timezone name.
// Exported separately so tests can probe specific zones.
func ForTimezone(timezone string) int {
	// UTC/GMT and the Etc/ zones carry no country association.
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

	// Japan splits 50/60 Hz by region; the Tokyo side is 50 Hz and the
	// most populous, so it wins the tie.
	if country == "Japan" {
		return 50
	}
	if sixtyHzCountries[country] {
		return 60
	}
	return 50
}

// sixtyHzCountries lists the countries on 60 Hz mains; everywhere else
// runs 50 Hz. From https://en.wikipedia.org/wiki/Mains_electricity_by_country
var sixtyHzCountries = map[string]bool{
	"United States": true,
	"Canada":        true,
	"Mexico":        true,

	"Belize":      true,
	"Costa Rica":  true,
	"El Salvador": true,
	"Guatemala":   true,
	"Honduras":    true,
	"Nicaragua":   true,
	"Panama":      true,

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

	// Brazil has pockets of 50 Hz but 60 Hz predominates.
	"Brazil":    true,
	"Colombia":  true,
	"Ecuador":   true,
	"Guyana":    true,
	"Peru":      true,
	"Suriname":  true,
	"Venezuela": true,

	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
