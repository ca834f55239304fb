package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

const mapboxBaseURL = "https://api.mapbox.com"

// MapboxProvider speaks the Mapbox Search Box and Geocoding APIs, keyed by
// mapbox ids and GeoJSON geometry. Mapbox cannot filter by radius
// server-side, so SearchNearby applies the radius cut itself, and it has
// no photo references, so PhotoURL always returns "".
type MapboxProvider struct {
	accessToken  string
	baseURL      string
	httpClient   *http.Client
	cache        Cache
	sessionToken string
}

func NewMapboxProvider(accessToken string, cache Cache) *MapboxProvider {
	return NewMapboxProviderWithOptions(accessToken, cache, mapboxBaseURL, nil)
}

func NewMapboxProviderWithOptions(accessToken string, cache Cache, baseURL string, httpClient *http.Client) *MapboxProvider {
	if baseURL == "" {
		baseURL = mapboxBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: upstreamTimeout}
	}
	return &MapboxProvider{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  httpClient,
		cache:       cache,
		// Search Box billing groups suggest/retrieve pairs by session.
		sessionToken: uuid.NewString(),
	}
}

// --------------------------------------------------
// Upstream wire types
// --------------------------------------------------

type mapboxSuggestion struct {
	MapboxID string `json:"mapbox_id"`
	Name     string `json:"name"`
}

type mapboxSuggestResponse struct {
	Suggestions []mapboxSuggestion `json:"suggestions"`
}

type mapboxProperties struct {
	MapboxID       string   `json:"mapbox_id"`
	Name           string   `json:"name"`
	FullAddress    string   `json:"full_address"`
	PlaceFormatted string   `json:"place_formatted"`
	Categories     []string `json:"poi_category"`
	Tel            string   `json:"tel"`
	Website        string   `json:"website"`

	Metadata *mapboxMetadata `json:"metadata"`
}

type mapboxMetadata struct {
	Wheelchair *bool `json:"wheelchair_accessible"`
}

type mapboxGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lng, lat]
}

type mapboxFeature struct {
	ID         string           `json:"id"`
	Geometry   mapboxGeometry   `json:"geometry"`
	Properties mapboxProperties `json:"properties"`
	PlaceName  string           `json:"place_name"`
	Context    []mapboxContext  `json:"context"`
}

type mapboxContext struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	ShortCode string `json:"short_code"`
}

type mapboxFeatureResponse struct {
	Features []mapboxFeature `json:"features"`
}

// --------------------------------------------------
// Provider implementation
// --------------------------------------------------

func (m *MapboxProvider) SearchNearby(ctx context.Context, q NearbyQuery) ([]PlaceSummary, error) {
	if m.accessToken == "" {
		return nil, errMissingMapboxToken()
	}

	params := url.Values{}
	params.Set("q", q.Keyword)
	params.Set("proximity", fmt.Sprintf("%f,%f", q.Longitude, q.Latitude))
	params.Set("limit", "10")
	if q.Type != "" {
		params.Set("types", q.Type)
	} else {
		params.Set("types", "poi")
	}
	params.Set("language", "pt")
	params.Set("access_token", m.accessToken)
	params.Set("session_token", m.sessionToken)

	var suggest mapboxSuggestResponse
	if err := m.doRequest(ctx, "/search/searchbox/v1/suggest", params, &suggest); err != nil {
		return nil, err
	}

	if len(suggest.Suggestions) == 0 {
		return []PlaceSummary{}, nil
	}

	results := make([]PlaceSummary, 0, len(suggest.Suggestions))
	for _, suggestion := range suggest.Suggestions {
		feature, err := m.retrieve(ctx, suggestion.MapboxID)
		if err != nil {
			// One bad retrieve should not sink the whole search.
			log.Warn().Err(err).Str("mapbox_id", suggestion.MapboxID).Msg("mapbox retrieve failed")
			continue
		}
		if feature == nil || len(feature.Geometry.Coordinates) < 2 {
			continue
		}

		lat := feature.Geometry.Coordinates[1]
		lng := feature.Geometry.Coordinates[0]

		// Radius is enforced here; the suggest endpoint only biases by
		// proximity.
		distance := DistanceKm(q.Latitude, q.Longitude, lat, lng)
		if q.RadiusMeters > 0 && distance > float64(q.RadiusMeters)/1000 {
			continue
		}

		summary := mapboxSummary(*feature)
		summary.DistanceKm = &distance
		results = append(results, summary)
	}

	return results, nil
}

func (m *MapboxProvider) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error) {
	if m.accessToken == "" {
		return nil, errMissingMapboxToken()
	}

	cacheKey := "geo:mapbox:details:" + placeID
	if detail, ok := cachedJSON[PlaceDetail](ctx, m.cache, cacheKey); ok {
		return detail, nil
	}

	feature, err := m.retrieve(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if feature == nil || len(feature.Geometry.Coordinates) < 2 {
		return nil, nil
	}

	detail := &PlaceDetail{
		PlaceSummary: mapboxSummary(*feature),
		Phone:        feature.Properties.Tel,
		Website:      feature.Properties.Website,
	}
	if meta := feature.Properties.Metadata; meta != nil && meta.Wheelchair != nil {
		detail.Accessibility = &AccessibilityInfo{Entrance: meta.Wheelchair}
	}

	storeJSON(ctx, m.cache, cacheKey, detail, cacheTTLDetails)
	return detail, nil
}

func (m *MapboxProvider) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	if m.accessToken == "" {
		return nil, errMissingMapboxToken()
	}

	cacheKey := "geo:mapbox:geocode:" + address
	if result, ok := cachedJSON[GeocodeResult](ctx, m.cache, cacheKey); ok {
		return result, nil
	}

	path := "/geocoding/v5/mapbox.places/" + url.PathEscape(address) + ".json"
	result, err := m.doGeocode(ctx, path)
	if err != nil || result == nil {
		return result, err
	}

	storeJSON(ctx, m.cache, cacheKey, result, cacheTTLGeocode)
	return result, nil
}

func (m *MapboxProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error) {
	if m.accessToken == "" {
		return nil, errMissingMapboxToken()
	}

	cacheKey := fmt.Sprintf("geo:mapbox:reverse:%.5f,%.5f", lat, lng)
	if result, ok := cachedJSON[GeocodeResult](ctx, m.cache, cacheKey); ok {
		return result, nil
	}

	path := fmt.Sprintf("/geocoding/v5/mapbox.places/%f,%f.json", lng, lat)
	result, err := m.doGeocode(ctx, path)
	if err != nil || result == nil {
		return result, err
	}

	storeJSON(ctx, m.cache, cacheKey, result, cacheTTLGeocode)
	return result, nil
}

// PhotoURL always returns "": Mapbox has no photo-reference concept.
func (m *MapboxProvider) PhotoURL(photoReference string, maxWidth int) string {
	return ""
}

// StaticMapURL builds a Static Images URL with a pin at the coordinates.
// It is Mapbox-specific and not part of the Provider contract.
func (m *MapboxProvider) StaticMapURL(lat, lng float64, zoom, width, height int) string {
	if m.accessToken == "" {
		return ""
	}
	return fmt.Sprintf(
		"%s/styles/v1/mapbox/streets-v11/static/pin-s+ff0000(%f,%f)/%f,%f,%d/%dx%d?access_token=%s",
		mapboxBaseURL, lng, lat, lng, lat, zoom, width, height, url.QueryEscape(m.accessToken),
	)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (m *MapboxProvider) retrieve(ctx context.Context, mapboxID string) (*mapboxFeature, error) {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("session_token", m.sessionToken)

	var resp mapboxFeatureResponse
	path := "/search/searchbox/v1/retrieve/" + url.PathEscape(mapboxID)
	if err := m.doRequest(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Features) == 0 {
		return nil, nil
	}
	return &resp.Features[0], nil
}

func (m *MapboxProvider) doGeocode(ctx context.Context, path string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("access_token", m.accessToken)
	params.Set("country", "br")
	params.Set("language", "pt")
	params.Set("limit", "1")

	var resp mapboxFeatureResponse
	if err := m.doRequest(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Features) == 0 {
		return nil, nil
	}

	feature := resp.Features[0]
	result := &GeocodeResult{
		FormattedAddress:  feature.PlaceName,
		PlaceID:           feature.ID,
		AddressComponents: mapboxComponents(feature.Context),
	}
	if len(feature.Geometry.Coordinates) >= 2 {
		result.Location = Location{
			Lat: feature.Geometry.Coordinates[1],
			Lng: feature.Geometry.Coordinates[0],
		}
	}
	return result, nil
}

func (m *MapboxProvider) doRequest(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := m.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return httperr.Provider("mapbox_request_failed", "Falha ao buscar dados do Mapbox.", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return httperr.Provider("mapbox_request_failed", "Falha ao buscar dados do Mapbox.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return httperr.Provider(
			"mapbox_bad_status",
			"Falha ao buscar dados do Mapbox.",
			fmt.Errorf("mapbox returned http %d", resp.StatusCode),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return httperr.Provider("mapbox_bad_payload", "Falha ao buscar dados do Mapbox.", err)
	}
	return nil
}

func mapboxSummary(feature mapboxFeature) PlaceSummary {
	props := feature.Properties

	name := props.Name
	if name == "" {
		name = props.FullAddress
	}
	address := props.FullAddress
	if address == "" {
		address = props.PlaceFormatted
	}

	placeID := props.MapboxID
	if placeID == "" {
		placeID = feature.ID
	}

	return PlaceSummary{
		PlaceID:  placeID,
		Name:     name,
		Address:  address,
		Location: Location{Lat: feature.Geometry.Coordinates[1], Lng: feature.Geometry.Coordinates[0]},
		Types:    props.Categories,
		Photos:   []Photo{},
	}
}

func mapboxComponents(context []mapboxContext) []AddressComponent {
	components := make([]AddressComponent, 0, len(context))
	for _, entry := range context {
		short := entry.ShortCode
		if short == "" {
			short = entry.Text
		}
		kind, _, _ := strings.Cut(entry.ID, ".")
		components = append(components, AddressComponent{
			LongName:  entry.Text,
			ShortName: short,
			Types:     []string{kind},
		})
	}
	return components
}

func errMissingMapboxToken() error {
	return httperr.Configuration(
		"mapbox_access_token_missing",
		"Token de acesso do Mapbox não configurado.",
	)
}
