package regions

// DefaultMargin is the half-width, in degrees, of each generated bounding box.
const DefaultMargin = 0.05

// Bounds is an axis-aligned latitude/longitude rectangle. All edges are inclusive.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether the point lies inside or on the edge of b.
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// LocationMapping ties one bounding box to the region it stands for.
type LocationMapping struct {
	Bounds Bounds
	Region Region
}

// Table is the ordered list of location mappings. Order decides overlaps.
type Table struct {
	mappings []LocationMapping
}

// BuildTable expands every division anchor in h by margin degrees, walking
// districts and divisions in hierarchy order. Divisions without an anchor are
// skipped.
func BuildTable(h Hierarchy, anchors Anchors, margin float64) Table {
	var mappings []LocationMapping
	for _, d := range h {
		for _, ds := range d.Divisions {
			c, ok := anchors.Divisions[ds]
			if !ok {
				continue
			}
			mappings = append(mappings, LocationMapping{
				Bounds: Bounds{
					MinLat: c.Lat - margin,
					MaxLat: c.Lat + margin,
					MinLng: c.Lng - margin,
					MaxLng: c.Lng + margin,
				},
				Region: Region{District: d.Name, DivisionalSecretariat: ds},
			})
		}
	}
	return Table{mappings: mappings}
}

// Len returns the number of mappings.
func (t Table) Len() int { return len(t.mappings) }

// lookup returns the region of the first mapping containing the point.
func (t Table) lookup(lat, lng float64) (Region, bool) {
	for _, m := range t.mappings {
		if m.Bounds.Contains(lat, lng) {
			return m.Region, true
		}
	}
	return Region{}, false
}
