package geo

import (
	"context"
	"time"
)

// Two structurally different upstreams (Google Places and Mapbox Search
// Box) sit behind this one contract. Callers never branch on provider
// identity; the implementation is picked by configuration in NewProvider.
//
// Failure policy, uniform across implementations:
//   - missing credential: Configuration error, raised before any network
//     call;
//   - upstream reports no match: nil or empty result, never an error;
//   - upstream or network failure (including timeout): Provider error.
type Provider interface {
	// SearchNearby lists places around the center. The radius is advisory:
	// Google filters server-side, Mapbox cannot and drops results beyond
	// the radius after a client-side distance check.
	SearchNearby(ctx context.Context, q NearbyQuery) ([]PlaceSummary, error)

	// GetPlaceDetails returns nil (not an error) for unknown place ids.
	GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error)

	Geocode(ctx context.Context, address string) (*GeocodeResult, error)

	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResult, error)

	// PhotoURL returns "" when no credential is configured, the reference
	// is empty, or the provider has no photo concept.
	PhotoURL(photoReference string, maxWidth int) string
}

type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Keyword      string
	Type         string
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Photo struct {
	PhotoReference string `json:"photoReference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type PlaceSummary struct {
	PlaceID          string   `json:"placeId"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Location         Location `json:"location"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"userRatingsTotal,omitempty"`
	Types            []string `json:"types"`
	PriceLevel       *int     `json:"priceLevel,omitempty"`
	Photos           []Photo  `json:"photos"`

	// Filled by providers that compute the radius cut client-side.
	DistanceKm *float64 `json:"distance,omitempty"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"openNow"`
	WeekdayText []string `json:"weekdayText"`
}

// AccessibilityInfo carries the accessibility features an upstream exposes.
// Nil fields mean "not reported", not "not accessible".
type AccessibilityInfo struct {
	Entrance *bool `json:"entrance"`
	Restroom *bool `json:"restroom"`
	Seating  *bool `json:"seating"`
	Parking  *bool `json:"parking"`
}

type PlaceDetail struct {
	PlaceSummary

	Phone         string             `json:"phone,omitempty"`
	Website       string             `json:"website,omitempty"`
	OpeningHours  *OpeningHours      `json:"openingHours,omitempty"`
	Accessibility *AccessibilityInfo `json:"accessibility,omitempty"`
}

type AddressComponent struct {
	LongName  string   `json:"longName"`
	ShortName string   `json:"shortName"`
	Types     []string `json:"types"`
}

type GeocodeResult struct {
	FormattedAddress  string             `json:"formattedAddress"`
	Location          Location           `json:"location"`
	PlaceID           string             `json:"placeId"`
	AddressComponents []AddressComponent `json:"addressComponents"`
}

// Upstream calls share one explicit timeout; expiry surfaces as a
// Provider error like any other network failure.
const upstreamTimeout = 8 * time.Second
