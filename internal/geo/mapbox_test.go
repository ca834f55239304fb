package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

func mapboxTestServer(t *testing.T, features map[string]mapboxFeature) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search/searchbox/v1/suggest":
			suggestions := make([]mapboxSuggestion, 0, len(features))
			for id, f := range features {
				suggestions = append(suggestions, mapboxSuggestion{MapboxID: id, Name: f.Properties.Name})
			}
			json.NewEncoder(w).Encode(mapboxSuggestResponse{Suggestions: suggestions})

		case strings.HasPrefix(r.URL.Path, "/search/searchbox/v1/retrieve/"):
			id := strings.TrimPrefix(r.URL.Path, "/search/searchbox/v1/retrieve/")
			f, ok := features[id]
			if !ok {
				json.NewEncoder(w).Encode(mapboxFeatureResponse{})
				return
			}
			json.NewEncoder(w).Encode(mapboxFeatureResponse{Features: []mapboxFeature{f}})

		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func poiFeature(id, name string, lat, lng float64) mapboxFeature {
	return mapboxFeature{
		ID: id,
		Geometry: mapboxGeometry{
			Coordinates: []float64{lng, lat},
		},
		Properties: mapboxProperties{
			MapboxID:    id,
			Name:        name,
			FullAddress: name + ", São Paulo",
			Categories:  []string{"cafe"},
		},
	}
}

func TestMapboxSearchNearby_MissingTokenFailsBeforeNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	provider := NewMapboxProviderWithOptions("", nil, server.URL, server.Client())

	_, err := provider.SearchNearby(context.Background(), NearbyQuery{Latitude: -23.55, Longitude: -46.63})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConfiguration))
	assert.False(t, called)
}

func TestMapboxSearchNearby_NoSuggestionsIsEmpty(t *testing.T) {
	server := mapboxTestServer(t, nil)
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	places, err := provider.SearchNearby(context.Background(), NearbyQuery{
		Latitude:  -23.55,
		Longitude: -46.63,
		Keyword:   "café",
	})

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestMapboxSearchNearby_EnforcesRadiusClientSide(t *testing.T) {
	// near is ~1.3 km from the center, far is hundreds of km away.
	server := mapboxTestServer(t, map[string]mapboxFeature{
		"near": poiFeature("near", "Café Perto", -23.5618, -46.6333),
		"far":  poiFeature("far", "Café Longe", -22.9068, -43.1729),
	})
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	places, err := provider.SearchNearby(context.Background(), NearbyQuery{
		Latitude:     -23.5505,
		Longitude:    -46.6333,
		RadiusMeters: 2000,
		Keyword:      "café",
	})

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "near", places[0].PlaceID)
	require.NotNil(t, places[0].DistanceKm)
	assert.LessOrEqual(t, *places[0].DistanceKm, 2.0)
}

func TestMapboxGetPlaceDetails_UnknownIDIsNil(t *testing.T) {
	server := mapboxTestServer(t, nil)
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	detail, err := provider.GetPlaceDetails(context.Background(), "missing-id")

	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestMapboxGetPlaceDetails_MapsAccessibilityMetadata(t *testing.T) {
	wheelchair := true
	feature := poiFeature("poi-1", "Café Central", -23.55, -46.63)
	feature.Properties.Tel = "+55 11 99999-0000"
	feature.Properties.Metadata = &mapboxMetadata{Wheelchair: &wheelchair}

	server := mapboxTestServer(t, map[string]mapboxFeature{"poi-1": feature})
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	detail, err := provider.GetPlaceDetails(context.Background(), "poi-1")

	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Café Central", detail.Name)
	assert.Equal(t, "+55 11 99999-0000", detail.Phone)
	require.NotNil(t, detail.Accessibility)
	require.NotNil(t, detail.Accessibility.Entrance)
	assert.True(t, *detail.Accessibility.Entrance)
}

func TestMapboxGeocode_FirstFeatureWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"))
		fmt.Fprint(w, `{
			"features": [{
				"id": "address.123",
				"place_name": "Av. Paulista 1000, São Paulo",
				"geometry": {"coordinates": [-46.6565, -23.5618]},
				"context": [
					{"id": "region.456", "text": "São Paulo", "short_code": "BR-SP"}
				]
			}]
		}`)
	}))
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	result, err := provider.Geocode(context.Background(), "Av. Paulista, 1000")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "address.123", result.PlaceID)
	assert.Equal(t, -23.5618, result.Location.Lat)
	assert.Equal(t, -46.6565, result.Location.Lng)
	require.Len(t, result.AddressComponents, 1)
	assert.Equal(t, "region", result.AddressComponents[0].Types[0])
	assert.Equal(t, "BR-SP", result.AddressComponents[0].ShortName)
}

func TestMapboxGeocode_EmptyFeaturesIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features": []}`)
	}))
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	result, err := provider.ReverseGeocode(context.Background(), -23.55, -46.63)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMapboxUpstreamFailureIsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewMapboxProviderWithOptions("token", nil, server.URL, server.Client())

	_, err := provider.Geocode(context.Background(), "qualquer endereço")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindProvider))
}

func TestMapboxPhotoURL_AlwaysEmpty(t *testing.T) {
	provider := NewMapboxProvider("token", nil)
	assert.Equal(t, "", provider.PhotoURL("anything", 800))
}
