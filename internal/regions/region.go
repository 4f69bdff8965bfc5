// Package regions maps GPS coordinates and reverse-geocoded address text onto
// the fixed district / divisional secretariat hierarchy used by every form and
// map in the application.
//
// Resolution works in two ways:
//   - ResolveByCoordinates scans a precomputed list of bounding boxes (one per
//     divisional secretariat anchor) and returns the first box containing the
//     point, falling back to a default region when nothing matches.
//   - ResolveByAddressHint matches free-text fields from a reverse geocoder
//     against district and division names in three passes of decreasing
//     precision.
//
// The hierarchy, anchors and mapping table are immutable values built once at
// start-up and injected into a Resolver.
package regions

import "strings"

// Region is a canonical (district, divisional secretariat) pair.
type Region struct {
	District              string `json:"district"`
	DivisionalSecretariat string `json:"divisional_secretariat"`
}

// Coordinates is a latitude/longitude anchor in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// District is one top-level entry of the hierarchy with its ordered divisions.
type District struct {
	Name      string
	Divisions []string
}

// Hierarchy is the ordered district → divisional secretariat reference table.
type Hierarchy []District

// Find returns the district whose name equals name, ignoring case.
func (h Hierarchy) Find(name string) (District, bool) {
	for _, d := range h {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return District{}, false
}

// Anchors holds the lookup coordinates for districts and divisions.
type Anchors struct {
	Districts map[string]Coordinates
	Divisions map[string]Coordinates
}

// Address is the address record returned by a reverse geocoder.
// Every field is optional; an empty string means the provider omitted it.
type Address struct {
	County        string `json:"county,omitempty"`
	StateDistrict string `json:"state_district,omitempty"`
	District      string `json:"district,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	Village       string `json:"village,omitempty"`
	Town          string `json:"town,omitempty"`
	Hamlet        string `json:"hamlet,omitempty"`
	Neighbourhood string `json:"neighbourhood,omitempty"`
	CityDistrict  string `json:"city_district,omitempty"`
	Municipality  string `json:"municipality,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
}

// DistrictCandidate returns the first non-empty of county, state_district and district.
func (a Address) DistrictCandidate() string {
	return firstNonEmpty(a.County, a.StateDistrict, a.District)
}

// AreaCandidate returns the most specific locality name the provider reported.
func (a Address) AreaCandidate() string {
	return firstNonEmpty(a.localities()...)
}

// Fragments returns every non-empty locality field followed by the postcode.
func (a Address) Fragments() []string {
	parts := append(a.localities(), a.Postcode)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a Address) localities() []string {
	return []string{a.Suburb, a.Village, a.Town, a.Hamlet, a.Neighbourhood, a.CityDistrict, a.Municipality}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
