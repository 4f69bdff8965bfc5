package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fixtures ---

func testHierarchy() Hierarchy {
	return Hierarchy{
		{Name: "Colombo", Divisions: []string{"Colombo", "Dehiwala", "Kesbewa"}},
		{Name: "Gampaha", Divisions: []string{"Negombo", "Gampaha", "Ja-Ela"}},
		{Name: "Kandy", Divisions: []string{"Kandy Four Gravets", "Akurana"}},
	}
}

func testAnchors() Anchors {
	return Anchors{
		Districts: map[string]Coordinates{
			"Colombo": {Lat: 6.93, Lng: 79.86},
			"Gampaha": {Lat: 7.09, Lng: 80.00},
		},
		Divisions: map[string]Coordinates{
			"Colombo":  {Lat: 6.93, Lng: 79.84},
			"Dehiwala": {Lat: 6.85, Lng: 79.87},
			"Negombo":  {Lat: 7.21, Lng: 79.84},
			"Gampaha":  {Lat: 7.09, Lng: 80.00},
			"Akurana":  {Lat: 7.37, Lng: 80.62},
		},
	}
}

func testResolver() *Resolver {
	h := testHierarchy()
	a := testAnchors()
	return NewResolver(h, a, BuildTable(h, a, DefaultMargin), Region{District: "Colombo", DivisionalSecretariat: "Colombo"})
}

// --- coordinate resolution ---

func TestResolveByCoordinates_InsideSingleBox(t *testing.T) {
	r := testResolver()

	got := r.ResolveByCoordinates(7.21, 79.84)

	assert.Equal(t, Region{District: "Gampaha", DivisionalSecretariat: "Negombo"}, got)
}

func TestResolveByCoordinates_EdgeIsInclusive(t *testing.T) {
	r := testResolver()

	got := r.ResolveByCoordinates(7.37+DefaultMargin, 80.62-DefaultMargin)

	assert.Equal(t, Region{District: "Kandy", DivisionalSecretariat: "Akurana"}, got)
}

func TestResolveByCoordinates_OverlapFirstListedWins(t *testing.T) {
	h := Hierarchy{
		{Name: "North", Divisions: []string{"Alpha"}},
		{Name: "South", Divisions: []string{"Beta"}},
	}
	a := Anchors{Divisions: map[string]Coordinates{
		"Alpha": {Lat: 7.00, Lng: 80.00},
		"Beta":  {Lat: 7.04, Lng: 80.04},
	}}
	r := NewResolver(h, a, BuildTable(h, a, DefaultMargin), Region{District: "North", DivisionalSecretariat: "Alpha"})

	got := r.ResolveByCoordinates(7.02, 80.02)

	assert.Equal(t, Region{District: "North", DivisionalSecretariat: "Alpha"}, got)
}

func TestResolveByCoordinates_NoMatchReturnsFallback(t *testing.T) {
	r := testResolver()

	got := r.ResolveByCoordinates(51.5074, -0.1278)

	assert.Equal(t, r.fallback, got)
	assert.Equal(t, Region{District: "Colombo", DivisionalSecretariat: "Colombo"}, got)
}

func TestBuildTable_SkipsDivisionsWithoutAnchor(t *testing.T) {
	h := testHierarchy()
	table := BuildTable(h, testAnchors(), DefaultMargin)

	require.Equal(t, 5, table.Len())
	m := table.mappings
	assert.Equal(t, Region{District: "Colombo", DivisionalSecretariat: "Colombo"}, m[0].Region)
	assert.Equal(t, Region{District: "Kandy", DivisionalSecretariat: "Akurana"}, m[4].Region)
	assert.InDelta(t, 6.88, m[0].Bounds.MinLat, 1e-9)
	assert.InDelta(t, 79.89, m[0].Bounds.MaxLng, 1e-9)
}

// --- address-hint resolution ---

func TestResolveByAddressHint_ExactMatch(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveByAddressHint("gampaha", "ja-ela", nil)

	require.NoError(t, err)
	assert.Equal(t, Region{District: "Gampaha", DivisionalSecretariat: "Ja-Ela"}, res.Region)
	assert.Equal(t, PassExact, res.Pass)
	assert.False(t, res.AutoSelected)
}

func TestResolveByAddressHint_StripsDistrictSuffix(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveByAddressHint("Colombo District", "Dehiwala", nil)

	require.NoError(t, err)
	assert.Equal(t, "Colombo", res.Region.District)
	assert.Equal(t, "Dehiwala", res.Region.DivisionalSecretariat)
}

func TestResolveByAddressHint_PartialMatch(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name     string
		district string
		area     string
		want     string
	}{
		{"area contains division", "Colombo", "Dehiwala-Mount Lavinia", "Dehiwala"},
		{"division contains area", "Kandy", "Gravets", "Kandy Four Gravets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.ResolveByAddressHint(tt.district, tt.area, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Region.DivisionalSecretariat)
			assert.Equal(t, PassPartial, res.Pass)
		})
	}
}

func TestResolveByAddressHint_FragmentMatch(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveByAddressHint("Colombo", "Piliyandala", []string{"Piliyandala", "Kesbewa Urban Council", "10300"})

	require.NoError(t, err)
	assert.Equal(t, "Kesbewa", res.Region.DivisionalSecretariat)
	assert.Equal(t, PassFragment, res.Pass)
	assert.False(t, res.AutoSelected)
}

func TestResolveByAddressHint_FallsBackToFirstDivision(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveByAddressHint("Gampaha", "Unknownville", []string{"Unknownville", "99999"})

	require.NoError(t, err)
	assert.Equal(t, Region{District: "Gampaha", DivisionalSecretariat: "Negombo"}, res.Region)
	assert.Equal(t, PassFallback, res.Pass)
	assert.True(t, res.AutoSelected)
}

func TestResolveByAddressHint_EmptyAreaSkipsToFallback(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveByAddressHint("Kandy", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Kandy Four Gravets", res.Region.DivisionalSecretariat)
	assert.True(t, res.AutoSelected)
}

func TestResolveByAddressHint_UnknownDistrict(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name     string
		district string
	}{
		{"not in hierarchy", "Western Province"},
		{"empty", ""},
		{"suffix only", " District"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ResolveByAddressHint(tt.district, "Colombo", nil)
			assert.ErrorIs(t, err, ErrUnresolved)
		})
	}
}

func TestResolveAddress_FieldPrecedence(t *testing.T) {
	r := testResolver()

	res, err := r.ResolveAddress(Address{
		County:        "Gampaha District",
		StateDistrict: "Colombo",
		Village:       "Negombo",
		Suburb:        "Ja-Ela",
	})

	require.NoError(t, err)
	assert.Equal(t, Region{District: "Gampaha", DivisionalSecretariat: "Ja-Ela"}, res.Region)
	assert.Equal(t, PassExact, res.Pass)
}

func TestAddress_Fragments(t *testing.T) {
	a := Address{Town: "Kesbewa", Municipality: "Piliyandala", Postcode: "10300"}

	assert.Equal(t, "Kesbewa", a.AreaCandidate())
	assert.Equal(t, []string{"Kesbewa", "Piliyandala", "10300"}, a.Fragments())
	assert.Empty(t, Address{}.DistrictCandidate())
}

// --- hierarchy queries ---

func TestResolver_HierarchyQueries(t *testing.T) {
	r := testResolver()

	assert.Equal(t, []string{"Colombo", "Gampaha", "Kandy"}, r.Districts())
	assert.Equal(t, []string{"Kandy Four Gravets", "Akurana"}, r.Divisions("kandy"))
	assert.Nil(t, r.Divisions("Atlantis"))
	assert.True(t, r.Contains("Gampaha", "Ja-Ela"))
	assert.False(t, r.Contains("Gampaha", "Dehiwala"))
	assert.False(t, r.Contains("gampaha", "Ja-Ela"))

	c, ok := r.DistrictCoordinates("Gampaha")
	require.True(t, ok)
	assert.Equal(t, Coordinates{Lat: 7.09, Lng: 80.00}, c)

	_, ok = r.DivisionCoordinates("Kesbewa")
	assert.False(t, ok)
}

// --- shipped data ---

func TestDefault_ColomboAnchorResolves(t *testing.T) {
	r := Default()

	got := r.ResolveByCoordinates(6.9344, 79.8428)

	assert.Equal(t, Region{District: "Colombo", DivisionalSecretariat: "Colombo"}, got)
	assert.Equal(t, got, r.fallback)
}

func TestDefault_HierarchyShape(t *testing.T) {
	r := Default()

	districts := r.Districts()
	require.Len(t, districts, 25)
	assert.Equal(t, "Colombo", districts[0])
	assert.Equal(t, "Kegalle", districts[24])
	assert.True(t, r.Contains("Colombo", "Colombo"))

	for _, m := range r.table.mappings {
		assert.True(t, r.Contains(m.Region.District, m.Region.DivisionalSecretariat), m.Region)
	}
}

func TestDefault_EveryDistrictHasAnchor(t *testing.T) {
	r := Default()

	for _, d := range r.Districts() {
		_, ok := r.DistrictCoordinates(d)
		assert.True(t, ok, d)
		assert.NotEmpty(t, r.Divisions(d), d)
	}
}

func TestSriLanka_ReturnsFreshCopy(t *testing.T) {
	h := SriLanka()
	h[0].Divisions[0] = "Mutated"

	assert.Equal(t, "Colombo", SriLanka()[0].Divisions[0])
}
