package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incluiaqui/incluiaqui-api/internal/geo"
	"github.com/incluiaqui/incluiaqui-api/internal/handlers"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

type stubProvider struct {
	places   []geo.PlaceSummary
	detail   *geo.PlaceDetail
	geocode  *geo.GeocodeResult
	photoURL string
	err      error
}

func (s *stubProvider) SearchNearby(context.Context, geo.NearbyQuery) ([]geo.PlaceSummary, error) {
	return s.places, s.err
}

func (s *stubProvider) GetPlaceDetails(context.Context, string) (*geo.PlaceDetail, error) {
	return s.detail, s.err
}

func (s *stubProvider) Geocode(context.Context, string) (*geo.GeocodeResult, error) {
	return s.geocode, s.err
}

func (s *stubProvider) ReverseGeocode(context.Context, float64, float64) (*geo.GeocodeResult, error) {
	return s.geocode, s.err
}

func (s *stubProvider) PhotoURL(string, int) string {
	return s.photoURL
}

func placesRouter(provider geo.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewPlacesHandler(provider)

	r := gin.New()
	r.GET("/api/places/search-nearby", h.SearchNearby)
	r.GET("/api/places/details/:placeId", h.Details)
	r.GET("/api/places/distance", h.Distance)
	r.GET("/api/places/picture", h.Picture)
	return r
}

func TestPlacesSearchNearby_RequiresCoordinates(t *testing.T) {
	r := placesRouter(&stubProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/places/search-nearby", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlacesSearchNearby_ReturnsPlaces(t *testing.T) {
	r := placesRouter(&stubProvider{
		places: []geo.PlaceSummary{{PlaceID: "p1", Name: "Café Central"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/places/search-nearby?lat=-23.55&lng=-46.63&radius=1000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []geo.PlaceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "p1", body[0].PlaceID)
}

func TestPlacesSearchNearby_AcceptsZeroLatitude(t *testing.T) {
	r := placesRouter(&stubProvider{places: []geo.PlaceSummary{}})

	// Points on the equator carry lat=0; that is a valid coordinate,
	// not a missing parameter.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/places/search-nearby?lat=0&lng=10&radius=1000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlacesSearchNearby_ConfigurationErrorIs500(t *testing.T) {
	r := placesRouter(&stubProvider{
		err: httperr.Configuration("google_api_key_missing", "Chave da API do Google Maps não configurada."),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/places/search-nearby?lat=-23.55&lng=-46.63", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(httperr.KindConfiguration), body.Error)
}

func TestPlacesDetails_UnknownPlaceIs404(t *testing.T) {
	r := placesRouter(&stubProvider{detail: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/places/details/ChIJmissing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlacesDistance_ComputesKilometers(t *testing.T) {
	r := placesRouter(&stubProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/places/distance?lat1=-23.5505&lng1=-46.6333&lat2=-22.9068&lng2=-43.1729", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Distance float64 `json:"distance"`
		Unit     string  `json:"unit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 360, body.Distance, 10)
	assert.Equal(t, "km", body.Unit)
}

func TestPlacesDistance_AcceptsZeroLongitude(t *testing.T) {
	r := placesRouter(&stubProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/places/distance?lat1=10&lng1=0&lat2=11&lng2=1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Distance float64 `json:"distance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Greater(t, body.Distance, 0.0)
}

func TestPlacesPicture_NoURLIs404(t *testing.T) {
	r := placesRouter(&stubProvider{photoURL: ""})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/places/picture?photoReference=ref1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
