package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
)

const googleBaseURL = "https://maps.googleapis.com"

// GoogleProvider speaks the legacy Google Places / Geocoding JSON APIs,
// keyed by opaque place ids and photo references.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

func NewGoogleProvider(apiKey string, cache Cache) *GoogleProvider {
	return NewGoogleProviderWithOptions(apiKey, cache, googleBaseURL, nil)
}

// NewGoogleProviderWithOptions overrides the base URL and HTTP client,
// used by tests.
func NewGoogleProviderWithOptions(apiKey string, cache Cache, baseURL string, httpClient *http.Client) *GoogleProvider {
	if baseURL == "" {
		baseURL = googleBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: upstreamTimeout}
	}
	return &GoogleProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      cache,
	}
}

// --------------------------------------------------
// Upstream wire types
// --------------------------------------------------

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googlePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type googleOpeningHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type googlePlace struct {
	PlaceID          string              `json:"place_id"`
	Name             string              `json:"name"`
	Vicinity         string              `json:"vicinity"`
	FormattedAddress string              `json:"formatted_address"`
	Geometry         googleGeometry      `json:"geometry"`
	Rating           *float64            `json:"rating"`
	UserRatingsTotal *int                `json:"user_ratings_total"`
	Types            []string            `json:"types"`
	PriceLevel       *int                `json:"price_level"`
	Photos           []googlePhoto       `json:"photos"`
	Phone            string              `json:"formatted_phone_number"`
	Website          string              `json:"website"`
	OpeningHours     *googleOpeningHours `json:"opening_hours"`

	WheelchairAccessibleEntrance *bool `json:"wheelchair_accessible_entrance"`
}

type googleAddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type googleGeocodeResult struct {
	FormattedAddress  string                   `json:"formatted_address"`
	Geometry          googleGeometry           `json:"geometry"`
	PlaceID           string                   `json:"place_id"`
	AddressComponents []googleAddressComponent `json:"address_components"`
}

type googleResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []googlePlace `json:"results"`
	Result       *googlePlace  `json:"result"`
}

type googleGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message"`
	Results      []googleGeocodeResult `json:"results"`
}

// --------------------------------------------------
// Provider implementation
// --------------------------------------------------

func (g *GoogleProvider) SearchNearby(ctx context.Context, q NearbyQuery) ([]PlaceSummary, error) {
	if g.apiKey == "" {
		return nil, errMissingGoogleKey()
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", q.Latitude, q.Longitude))
	params.Set("radius", strconv.Itoa(q.RadiusMeters))
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	params.Set("language", "pt-BR")
	params.Set("key", g.apiKey)

	var resp googleResponse
	if err := g.doRequest(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == "ZERO_RESULTS" {
		return []PlaceSummary{}, nil
	}
	if resp.Status != "OK" {
		return nil, errGoogleStatus(resp.Status, resp.ErrorMessage)
	}

	places := make([]PlaceSummary, 0, len(resp.Results))
	for _, p := range resp.Results {
		places = append(places, googleSummary(p))
	}
	return places, nil
}

func (g *GoogleProvider) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error) {
	if g.apiKey == "" {
		return nil, errMissingGoogleKey()
	}

	cacheKey := "geo:google:details:" + placeID
	if detail, ok := cachedJSON[PlaceDetail](ctx, g.cache, cacheKey); ok {
		return detail, nil
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,rating,user_ratings_total,"+
		"formatted_phone_number,website,opening_hours,photos,types,price_level,"+
		"wheelchair_accessible_entrance")
	params.Set("language", "pt-BR")
	params.Set("key", g.apiKey)

	var resp googleResponse
	if err := g.doRequest(ctx, "/maps/api/place/details/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == "ZERO_RESULTS" || resp.Status == "NOT_FOUND" || resp.Result == nil {
		if resp.Status != "ZERO_RESULTS" && resp.Status != "NOT_FOUND" && resp.Status != "OK" {
			return nil, errGoogleStatus(resp.Status, resp.ErrorMessage)
		}
		return nil, nil
	}
	if resp.Status != "OK" {
		return nil, errGoogleStatus(resp.Status, resp.ErrorMessage)
	}

	p := *resp.Result
	detail := &PlaceDetail{
		PlaceSummary: googleSummary(p),
		Phone:        p.Phone,
		Website:      p.Website,
	}
	detail.Address = p.FormattedAddress
	if p.OpeningHours != nil {
		detail.OpeningHours = &OpeningHours{
			OpenNow:     p.OpeningHours.OpenNow,
			WeekdayText: p.OpeningHours.WeekdayText,
		}
	}
	if p.WheelchairAccessibleEntrance != nil {
		detail.Accessibility = &AccessibilityInfo{Entrance: p.WheelchairAccessibleEntrance}
	}

	storeJSON(ctx, g.cache, cacheKey, detail, cacheTTLDetails)
	return detail, nil
}

func (g *GoogleProvider) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	if g.apiKey == "" {
		return nil, errMissingGoogleKey()
	}

	cacheKey := "geo:google:geocode:" + address
	if result, ok := cachedJSON[GeocodeResult](ctx, g.cache, cacheKey); ok {
		return result, nil
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("language", "pt-BR")
	params.Set("region", "br")
	params.Set("key", g.apiKey)

	result, err := g.doGeocode(ctx, params)
	if err != nil || result == nil {
		return result, err
	}

	storeJSON(ctx, g.cache, cacheKey, result, cacheTTLGeocode)
	return result, nil
}

func (g *GoogleProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error) {
	if g.apiKey == "" {
		return nil, errMissingGoogleKey()
	}

	cacheKey := fmt.Sprintf("geo:google:reverse:%.5f,%.5f", lat, lng)
	if result, ok := cachedJSON[GeocodeResult](ctx, g.cache, cacheKey); ok {
		return result, nil
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("language", "pt-BR")
	params.Set("region", "br")
	params.Set("key", g.apiKey)

	result, err := g.doGeocode(ctx, params)
	if err != nil || result == nil {
		return result, err
	}

	storeJSON(ctx, g.cache, cacheKey, result, cacheTTLGeocode)
	return result, nil
}

func (g *GoogleProvider) PhotoURL(photoReference string, maxWidth int) string {
	if g.apiKey == "" || photoReference == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 400
	}
	return fmt.Sprintf(
		"%s/maps/api/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		googleBaseURL, maxWidth, url.QueryEscape(photoReference), url.QueryEscape(g.apiKey),
	)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (g *GoogleProvider) doGeocode(ctx context.Context, params url.Values) (*GeocodeResult, error) {
	var resp googleGeocodeResponse
	if err := g.doRequest(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == "ZERO_RESULTS" || len(resp.Results) == 0 {
		if resp.Status != "ZERO_RESULTS" && resp.Status != "OK" {
			return nil, errGoogleStatus(resp.Status, resp.ErrorMessage)
		}
		return nil, nil
	}
	if resp.Status != "OK" {
		return nil, errGoogleStatus(resp.Status, resp.ErrorMessage)
	}

	r := resp.Results[0]
	components := make([]AddressComponent, 0, len(r.AddressComponents))
	for _, comp := range r.AddressComponents {
		components = append(components, AddressComponent{
			LongName:  comp.LongName,
			ShortName: comp.ShortName,
			Types:     comp.Types,
		})
	}

	return &GeocodeResult{
		FormattedAddress:  r.FormattedAddress,
		Location:          Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		PlaceID:           r.PlaceID,
		AddressComponents: components,
	}, nil
}

func (g *GoogleProvider) doRequest(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := g.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return httperr.Provider("google_request_failed", "Falha ao buscar dados do Google Maps.", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return httperr.Provider("google_request_failed", "Falha ao buscar dados do Google Maps.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return httperr.Provider(
			"google_bad_status",
			"Falha ao buscar dados do Google Maps.",
			fmt.Errorf("google returned http %d", resp.StatusCode),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return httperr.Provider("google_bad_payload", "Falha ao buscar dados do Google Maps.", err)
	}
	return nil
}

func googleSummary(p googlePlace) PlaceSummary {
	address := p.Vicinity
	if address == "" {
		address = p.FormattedAddress
	}

	photos := make([]Photo, 0, len(p.Photos))
	for _, photo := range p.Photos {
		photos = append(photos, Photo{
			PhotoReference: photo.PhotoReference,
			Width:          photo.Width,
			Height:         photo.Height,
		})
	}

	return PlaceSummary{
		PlaceID:          p.PlaceID,
		Name:             p.Name,
		Address:          address,
		Location:         Location{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng},
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		Types:            p.Types,
		PriceLevel:       p.PriceLevel,
		Photos:           photos,
	}
}

func errMissingGoogleKey() error {
	return httperr.Configuration(
		"google_api_key_missing",
		"Chave da API do Google Maps não configurada.",
	)
}

func errGoogleStatus(status, message string) error {
	log.Error().Str("status", status).Str("detail", message).Msg("google places error")
	return httperr.Provider(
		"google_status_"+status,
		"Falha ao buscar dados do Google Maps.",
		fmt.Errorf("google status %s: %s", status, message),
	)
}

func cachedJSON[T any](ctx context.Context, cache Cache, key string) (*T, bool) {
	if cache == nil {
		return nil, false
	}
	raw, ok := cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, false
	}
	return &value, true
}

func storeJSON(ctx context.Context, cache Cache, key string, value any, ttl time.Duration) {
	if cache == nil {
		return
	}
	if raw, err := json.Marshal(value); err == nil {
		cache.Set(ctx, key, raw, ttl)
	}
}
