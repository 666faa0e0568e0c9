// internal/usecase/resolver.go
package usecase

import (
	"context"
	"errors"
	"sort"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
	"departly/pkg/logger"
	"departly/pkg/utils"
)

// citySynonyms maps airport codes to every name the knowledge base may file
// a city under. Order matters: the first name is the display name, and
// queries run in this order.
var citySynonyms = map[string][]string{
	"BLR": {"Bengaluru", "Bangalore"},
	"DEL": {"Delhi", "New Delhi"},
	"BOM": {"Mumbai", "Bombay"},
	"MAA": {"Chennai", "Madras"},
	"CCU": {"Kolkata", "Calcutta"},
	"HYD": {"Hyderabad"},
	"COK": {"Kochi", "Cochin", "Ernakulam"},
	"GOI": {"Goa"},
	"GOX": {"Goa"},
	"PNQ": {"Pune"},
	"AMD": {"Ahmedabad"},
	"JAI": {"Jaipur"},
	"LKO": {"Lucknow"},
	"VNS": {"Varanasi", "Banaras"},
	"ATQ": {"Amritsar"},
	"IXC": {"Chandigarh"},
	"TRV": {"Thiruvananthapuram", "Trivandrum"},
	"GAU": {"Guwahati"},
	"BBI": {"Bhubaneswar"},
	"PAT": {"Patna"},
	"UDR": {"Udaipur"},
	"JDH": {"Jodhpur"},
	"SXR": {"Srinagar"},
	"IXL": {"Leh"},
	"MYQ": {"Mysuru", "Mysore"},
	"IXM": {"Madurai"},
	"CJB": {"Coimbatore"},
	"VTZ": {"Visakhapatnam", "Vizag"},
	"NAG": {"Nagpur"},
	"IDR": {"Indore"},
	"BHO": {"Bhopal"},
	"DED": {"Dehradun"},
	"IXB": {"Darjeeling", "Siliguri"},
}

// manualCities is the comprehensive list behind the manual override
// control, for travellers whose destination no tier can resolve.
var manualCities = []string{
	"Agra", "Ahmedabad", "Ajmer", "Alleppey", "Amritsar", "Aurangabad",
	"Bengaluru", "Bhopal", "Bhubaneswar", "Chandigarh", "Chennai",
	"Coimbatore", "Darjeeling", "Dehradun", "Delhi", "Gangtok", "Goa",
	"Guwahati", "Gwalior", "Hampi", "Haridwar", "Hyderabad", "Indore",
	"Jaipur", "Jaisalmer", "Jodhpur", "Kochi", "Kolkata", "Leh", "Lucknow",
	"Madurai", "Manali", "Mount Abu", "Mumbai", "Munnar", "Mysuru",
	"Nagpur", "Nainital", "Ooty", "Patna", "Pondicherry", "Pune", "Puri",
	"Pushkar", "Rishikesh", "Shillong", "Shimla", "Srinagar",
	"Thiruvananthapuram", "Tirupati", "Udaipur", "Varanasi",
	"Visakhapatnam",
}

// CityResolver maps destination airports to knowledge-base city names.
// Tiers: static synonym table, airport directory, live flight API. Every
// tier failing is not an error; the caller falls back to the manual list.
type CityResolver struct {
	airportRepo repository.AirportRepository
	flightRepo  repository.FlightRepository
	logger      logger.Logger
}

// NewCityResolver creates a new city resolver
func NewCityResolver(airportRepo repository.AirportRepository, flightRepo repository.FlightRepository, logger logger.Logger) *CityResolver {
	return &CityResolver{
		airportRepo: airportRepo,
		flightRepo:  flightRepo,
		logger:      logger,
	}
}

// Resolve maps an airport code to city-name candidates.
func (r *CityResolver) Resolve(ctx context.Context, airportCode string) entity.CityResolution {
	code := utils.NormalizeIATA(airportCode)
	if code == "" {
		return entity.CityResolution{AirportCode: code, Source: entity.ResolutionNone}
	}

	if names, ok := citySynonyms[code]; ok {
		candidates := make([]string, len(names))
		copy(candidates, names)
		return entity.CityResolution{AirportCode: code, Candidates: candidates, Source: entity.ResolutionStatic}
	}

	airport, err := r.airportRepo.GetByAirportCode(ctx, code)
	if err == nil && airport.CityName != "" {
		return entity.CityResolution{AirportCode: code, Candidates: []string{airport.CityName}, Source: entity.ResolutionDirectory}
	}
	if err != nil && !errors.Is(err, repository.ErrAirportNotFound) {
		r.logger.Warn("Airport directory lookup failed", "airport", code, "error", err)
	}

	if name := r.resolveLive(ctx, code); name != "" {
		return entity.CityResolution{AirportCode: code, Candidates: []string{name}, Source: entity.ResolutionLive}
	}

	return entity.CityResolution{AirportCode: code, Source: entity.ResolutionNone}
}

// resolveLive chains the flight API's airport and city metadata endpoints.
func (r *CityResolver) resolveLive(ctx context.Context, code string) string {
	meta, err := r.flightRepo.GetAirportMeta(ctx, code)
	if err != nil {
		r.logger.Warn("Live airport lookup failed", "airport", code, "error", err)
		return ""
	}

	if meta.CityName != "" {
		return meta.CityName
	}

	cityCode := meta.CityCode
	if cityCode == "" {
		cityCode = code
	}
	name, err := r.flightRepo.GetCityName(ctx, cityCode)
	if err != nil {
		r.logger.Warn("Live city lookup failed", "cityCode", cityCode, "error", err)
		return ""
	}
	return name
}

// ResolveManual wraps a user-picked city as a manual resolution.
func (r *CityResolver) ResolveManual(airportCode, city string) entity.CityResolution {
	return entity.CityResolution{
		AirportCode: utils.NormalizeIATA(airportCode),
		Candidates:  []string{city},
		Source:      entity.ResolutionManual,
	}
}

// ManualCities returns the sorted city list backing the manual override.
func (r *CityResolver) ManualCities() []string {
	cities := make([]string, len(manualCities))
	copy(cities, manualCities)
	sort.Strings(cities)
	return cities
}
