package entity

// AirportMeta is live airport metadata from the flight data API.
type AirportMeta struct {
	AirportName string
	IATACode    string
	CityCode    string
	CityName    string
	TzName      string
}
