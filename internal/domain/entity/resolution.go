// internal/domain/entity/resolution.go
package entity

// ResolutionSource identifies which tier produced a city resolution.
type ResolutionSource string

const (
	ResolutionStatic    ResolutionSource = "static"
	ResolutionDirectory ResolutionSource = "directory"
	ResolutionLive      ResolutionSource = "live"
	ResolutionManual    ResolutionSource = "manual"
	ResolutionNone      ResolutionSource = "none"
)

// CityResolution maps an airport code to the city names used when querying
// the knowledge base. Candidates keep their tier's order; the first one is
// the display name.
type CityResolution struct {
	AirportCode string           `json:"airportCode"`
	Candidates  []string         `json:"candidates"`
	Source      ResolutionSource `json:"source"`
}

// Unresolved reports whether no tier produced a usable city name.
func (r CityResolution) Unresolved() bool {
	return len(r.Candidates) == 0
}

// DisplayName returns the preferred city name, or "" when unresolved.
func (r CityResolution) DisplayName() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0]
}
