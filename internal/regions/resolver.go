package regions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolved is returned when an address hint names no known district.
// Callers should ask the user to pick the region manually.
var ErrUnresolved = errors.New("district not found in hierarchy")

// MatchPass identifies which step of address-hint resolution chose the division.
type MatchPass string

const (
	PassExact    MatchPass = "exact"
	PassPartial  MatchPass = "partial"
	PassFragment MatchPass = "fragment"
	PassFallback MatchPass = "fallback"
)

// Resolution is the outcome of address-hint resolution.
type Resolution struct {
	Region Region
	Pass   MatchPass
	// AutoSelected is set when no division matched and the district's first
	// division was picked instead. The pair has not been verified.
	AutoSelected bool
}

// Resolver answers region lookups over an injected hierarchy and mapping table.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	hierarchy Hierarchy
	anchors   Anchors
	table     Table
	fallback  Region
}

// NewResolver creates a resolver. fallback is returned by ResolveByCoordinates
// when no bounding box contains the point.
func NewResolver(h Hierarchy, anchors Anchors, t Table, fallback Region) *Resolver {
	return &Resolver{hierarchy: h, anchors: anchors, table: t, fallback: fallback}
}

// Default builds the resolver for the shipped Sri Lanka hierarchy.
func Default() *Resolver {
	h := SriLanka()
	a := SriLankaAnchors()
	return NewResolver(h, a, BuildTable(h, a, DefaultMargin), Region{District: "Colombo", DivisionalSecretariat: "Colombo"})
}

// ResolveByCoordinates returns the region of the first mapping whose box
// contains the point, or the fallback region. It never fails.
func (r *Resolver) ResolveByCoordinates(lat, lng float64) Region {
	region, _ := r.Locate(lat, lng)
	return region
}

// Locate is ResolveByCoordinates that also reports whether a box matched.
// When matched is false the fallback region is returned.
func (r *Resolver) Locate(lat, lng float64) (region Region, matched bool) {
	if region, ok := r.table.lookup(lat, lng); ok {
		return region, true
	}
	return r.fallback, false
}

// ResolveByAddressHint matches reverse-geocoder text against the hierarchy.
//
// The district must match exactly (ignoring case and a trailing " district").
// The division is then chosen by, in order: an exact match of area, a
// substring match of area in either direction, a substring match of any
// fragment in either direction, or else the district's first division with
// AutoSelected set.
func (r *Resolver) ResolveByAddressHint(district, area string, fragments []string) (Resolution, error) {
	candidate := NormalizeDistrict(district)
	d, ok := r.hierarchy.Find(candidate)
	if !ok || candidate == "" {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnresolved, candidate)
	}

	if ds, ok := matchExact(d.Divisions, area); ok {
		return Resolution{Region: Region{District: d.Name, DivisionalSecretariat: ds}, Pass: PassExact}, nil
	}
	if area != "" {
		if ds, ok := matchPartial(d.Divisions, area); ok {
			return Resolution{Region: Region{District: d.Name, DivisionalSecretariat: ds}, Pass: PassPartial}, nil
		}
	}
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if ds, ok := matchPartial(d.Divisions, f); ok {
			return Resolution{Region: Region{District: d.Name, DivisionalSecretariat: ds}, Pass: PassFragment}, nil
		}
	}

	first := ""
	if len(d.Divisions) > 0 {
		first = d.Divisions[0]
	}
	return Resolution{
		Region:       Region{District: d.Name, DivisionalSecretariat: first},
		Pass:         PassFallback,
		AutoSelected: true,
	}, nil
}

// ResolveAddress resolves a full reverse-geocoder address record.
func (r *Resolver) ResolveAddress(a Address) (Resolution, error) {
	return r.ResolveByAddressHint(a.DistrictCandidate(), a.AreaCandidate(), a.Fragments())
}

// Districts returns the district names in hierarchy order.
func (r *Resolver) Districts() []string {
	out := make([]string, len(r.hierarchy))
	for i, d := range r.hierarchy {
		out[i] = d.Name
	}
	return out
}

// Divisions returns the divisions of district, or nil if it is unknown.
func (r *Resolver) Divisions(district string) []string {
	d, ok := r.hierarchy.Find(district)
	if !ok {
		return nil
	}
	out := make([]string, len(d.Divisions))
	copy(out, d.Divisions)
	return out
}

// Contains reports whether division belongs to district. Names must match exactly.
func (r *Resolver) Contains(district, division string) bool {
	for _, d := range r.hierarchy {
		if d.Name != district {
			continue
		}
		for _, ds := range d.Divisions {
			if ds == division {
				return true
			}
		}
	}
	return false
}

// DistrictCoordinates returns the anchor of a district.
func (r *Resolver) DistrictCoordinates(name string) (Coordinates, bool) {
	c, ok := r.anchors.Districts[name]
	return c, ok
}

// DivisionCoordinates returns the anchor of a divisional secretariat.
func (r *Resolver) DivisionCoordinates(name string) (Coordinates, bool) {
	c, ok := r.anchors.Divisions[name]
	return c, ok
}

// NormalizeDistrict trims s and strips a trailing " district" (any case).
func NormalizeDistrict(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(strings.ToLower(s), " district") {
		s = strings.TrimSpace(s[:len(s)-len(" district")])
	}
	return s
}

func matchExact(divisions []string, area string) (string, bool) {
	for _, ds := range divisions {
		if strings.EqualFold(ds, area) {
			return ds, true
		}
	}
	return "", false
}

func matchPartial(divisions []string, text string) (string, bool) {
	t := strings.ToLower(text)
	for _, ds := range divisions {
		l := strings.ToLower(ds)
		if strings.Contains(l, t) || strings.Contains(t, l) {
			return ds, true
		}
	}
	return "", false
}
