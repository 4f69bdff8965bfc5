package handlers

import (
	"net/http"
	"testing"

	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler_Regions(t *testing.T) {
	env := newTestEnv(t, stubGeocoder{})

	rec := env.do(t, http.MethodGet, "/regions", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.DistrictList
	decode(t, rec, &list)
	assert.Len(t, list.Districts, 25)
	assert.Equal(t, "Colombo", list.Districts[0])

	rec = env.do(t, http.MethodGet, "/regions/Galle", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var district models.DistrictInfo
	decode(t, rec, &district)
	assert.Contains(t, district.Divisions, "Galle Four Gravets")
	require.NotNil(t, district.Coordinates)

	rec = env.do(t, http.MethodGet, "/regions/Atlantis", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/regions/Galle/divisions/Kandy", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocationHandler_Resolve(t *testing.T) {
	env := newTestEnv(t, stubGeocoder{})

	rec := env.do(t, http.MethodPost, "/location/resolve", map[string]float64{"latitude": 6.0535, "longitude": 80.2210}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var region regions.Region
	decode(t, rec, &region)
	assert.Equal(t, "Galle", region.District)

	rec = env.do(t, http.MethodPost, "/location/resolve", map[string]float64{"latitude": 0, "longitude": 0}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &region)
	assert.Equal(t, regions.Region{District: "Colombo", DivisionalSecretariat: "Colombo"}, region)

	rec = env.do(t, http.MethodPost, "/location/resolve", map[string]float64{"longitude": 80}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Fields, "latitude")

	rec = env.do(t, http.MethodPost, "/location/resolve", `{"latitude": "north"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_Detect(t *testing.T) {
	galle := stubGeocoder{result: geocode.Result{Address: regions.Address{
		County: "Galle District",
		Suburb: "Galle Four Gravets",
	}}}

	tests := []struct {
		name       string
		geocoder   stubGeocoder
		body       interface{}
		wantStatus int
		wantError  string
		want       models.DetectResponse
	}{
		{
			name:       "division detected",
			geocoder:   galle,
			body:       map[string]float64{"latitude": 6.05, "longitude": 80.22},
			wantStatus: http.StatusOK,
			want: models.DetectResponse{
				District:              "Galle",
				DivisionalSecretariat: "Galle Four Gravets",
				AutoDetected:          true,
				Match:                 "exact",
				Message:               "DS detected: Galle Four Gravets. Please verify if correct.",
				Latitude:              6.05,
				Longitude:             80.22,
			},
		},
		{
			name:       "district outside hierarchy",
			geocoder:   stubGeocoder{result: geocode.Result{Address: regions.Address{County: "Chennai District"}}},
			body:       map[string]float64{"latitude": 13.08, "longitude": 80.27},
			wantStatus: http.StatusOK,
			want: models.DetectResponse{
				Message:   "Detected district 'Chennai' not found in options. Please select manually.",
				Latitude:  13.08,
				Longitude: 80.27,
			},
		},
		{
			name:       "permission denied",
			geocoder:   galle,
			body:       map[string]int{"error_code": 1},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Location access denied by user",
		},
		{
			name:       "geocoder failure",
			geocoder:   stubGeocoder{err: errGeocoderDown},
			body:       map[string]float64{"latitude": 6.05, "longitude": 80.22},
			wantStatus: http.StatusBadGateway,
			wantError:  services.MsgGeocodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.geocoder)
			rec := env.do(t, http.MethodPost, "/location/detect", tt.body, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantError != "" {
				var body map[string]string
				decode(t, rec, &body)
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			var got models.DetectResponse
			decode(t, rec, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}
