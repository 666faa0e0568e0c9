package repository

import (
	"context"
	"strings"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
)

// StaticAirportRepository serves the airport directory from a built-in
// table. It backs deployments that run without the Postgres directory.
type StaticAirportRepository struct {
	byCode map[string]entity.Airport
}

// NewStaticAirportRepository creates the built-in airport directory
func NewStaticAirportRepository() repository.AirportRepository {
	repo := &StaticAirportRepository{byCode: make(map[string]entity.Airport, len(staticAirports))}
	for _, a := range staticAirports {
		repo.byCode[a.AirportCode] = a
	}
	return repo
}

// GetByAirportCode finds a directory row by airport code
func (r *StaticAirportRepository) GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error) {
	airport, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, repository.ErrAirportNotFound
	}
	return &airport, nil
}

var staticAirports = []entity.Airport{
	{AirportCode: "BLR", AirportName: "Kempegowda International Airport", CityName: "Bengaluru", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "DEL", AirportName: "Indira Gandhi International Airport", CityName: "Delhi", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "BOM", AirportName: "Chhatrapati Shivaji Maharaj International Airport", CityName: "Mumbai", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "MAA", AirportName: "Chennai International Airport", CityName: "Chennai", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "CCU", AirportName: "Netaji Subhas Chandra Bose International Airport", CityName: "Kolkata", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "HYD", AirportName: "Rajiv Gandhi International Airport", CityName: "Hyderabad", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "COK", AirportName: "Cochin International Airport", CityName: "Kochi", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "GOI", AirportName: "Goa International Airport", CityName: "Goa", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "GOX", AirportName: "Manohar International Airport", CityName: "Goa", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "PNQ", AirportName: "Pune Airport", CityName: "Pune", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "AMD", AirportName: "Sardar Vallabhbhai Patel International Airport", CityName: "Ahmedabad", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "JAI", AirportName: "Jaipur International Airport", CityName: "Jaipur", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "LKO", AirportName: "Chaudhary Charan Singh International Airport", CityName: "Lucknow", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "IXC", AirportName: "Chandigarh International Airport", CityName: "Chandigarh", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "ATQ", AirportName: "Sri Guru Ram Dass Jee International Airport", CityName: "Amritsar", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "TRV", AirportName: "Trivandrum International Airport", CityName: "Thiruvananthapuram", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "GAU", AirportName: "Lokpriya Gopinath Bordoloi International Airport", CityName: "Guwahati", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "BBI", AirportName: "Biju Patnaik International Airport", CityName: "Bhubaneswar", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "PAT", AirportName: "Jay Prakash Narayan Airport", CityName: "Patna", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "VNS", AirportName: "Lal Bahadur Shastri International Airport", CityName: "Varanasi", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "UDR", AirportName: "Maharana Pratap Airport", CityName: "Udaipur", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "SXR", AirportName: "Sheikh ul-Alam International Airport", CityName: "Srinagar", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "IXZ", AirportName: "Veer Savarkar International Airport", CityName: "Port Blair", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "NAG", AirportName: "Dr. Babasaheb Ambedkar International Airport", CityName: "Nagpur", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "IDR", AirportName: "Devi Ahilyabai Holkar Airport", CityName: "Indore", CountryCode: "IN", TzName: "Asia/Kolkata"},
	{AirportCode: "DXB", AirportName: "Dubai International Airport", CityName: "Dubai", CountryCode: "AE", TzName: "Asia/Dubai"},
	{AirportCode: "SIN", AirportName: "Singapore Changi Airport", CityName: "Singapore", CountryCode: "SG", TzName: "Asia/Singapore"},
	{AirportCode: "BKK", AirportName: "Suvarnabhumi Airport", CityName: "Bangkok", CountryCode: "TH", TzName: "Asia/Bangkok"},
	{AirportCode: "KUL", AirportName: "Kuala Lumpur International Airport", CityName: "Kuala Lumpur", CountryCode: "MY", TzName: "Asia/Kuala_Lumpur"},
	{AirportCode: "LHR", AirportName: "Heathrow Airport", CityName: "London", CountryCode: "GB", TzName: "Europe/London"},
	{AirportCode: "JFK", AirportName: "John F. Kennedy International Airport", CityName: "New York", CountryCode: "US", TzName: "America/New_York"},
	{AirportCode: "FRA", AirportName: "Frankfurt Airport", CityName: "Frankfurt", CountryCode: "DE", TzName: "Europe/Berlin"},
}
