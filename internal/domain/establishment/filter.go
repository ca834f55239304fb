package establishment

// SearchFilter combines the optional listing filters. Absent fields impose
// no constraint; present fields are ANDed together.
type SearchFilter struct {
	// Case-insensitive substring over name, description and neighborhood.
	Search string

	// Exact enum match.
	Category string

	// Case-insensitive substring.
	City string

	// Exact 2-letter code.
	State string

	// Coordinates switch the ordering to the proximity approximation.
	// Radius is advisory only; no server-side distance cut is applied.
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	// Applied in memory after the page is fetched; see the search usecase.
	MinRating *float64
}

func (f SearchFilter) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}
