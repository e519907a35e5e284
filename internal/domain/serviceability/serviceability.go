// Package serviceability answers whether a postal code is inside the
// operator's coverage area. The table is fixed at build time; lookups are
// pure and local, no network involved.
package serviceability

import (
	"fmt"
	"strings"
)

type serviceArea struct {
	name     string
	zipCodes []string
}

// Coverage is limited to three East Bay cities. Order matters only for the
// user-facing service-area message.
var serviceAreas = []serviceArea{
	{
		name: "Oakland",
		zipCodes: []string{
			"94601", "94602", "94603", "94604", "94605", "94606", "94607",
			"94608", "94609", "94610", "94611", "94612", "94613", "94614",
			"94615", "94617", "94618", "94619", "94621",
		},
	},
	{
		name:     "Fremont",
		zipCodes: []string{"94536", "94537", "94538", "94539", "94555"},
	},
	{
		name: "Berkeley",
		zipCodes: []string{
			"94701", "94702", "94703", "94704", "94705", "94706", "94707",
			"94708", "94709", "94710", "94712", "94720",
		},
	},
}

var zipToCity = func() map[string]string {
	m := make(map[string]string)
	for _, area := range serviceAreas {
		for _, zip := range area.zipCodes {
			m[zip] = area.name
		}
	}
	return m
}()

// IsZipSupported reports whether the zip code is inside the coverage area.
func IsZipSupported(zip string) bool {
	_, ok := zipToCity[zip]
	return ok
}

// CityForZip returns the city served by the zip code, or "" when the zip is
// outside the coverage area.
func CityForZip(zip string) string {
	return zipToCity[zip]
}

// ServiceAreaMessage enumerates the supported city names for remediation
// text when a correctly-formatted zip is outside the coverage area.
func ServiceAreaMessage() string {
	names := make([]string, len(serviceAreas))
	for i, area := range serviceAreas {
		names[i] = area.name
	}
	return fmt.Sprintf("Currently, we only service the following areas: %s", strings.Join(names, ", "))
}
