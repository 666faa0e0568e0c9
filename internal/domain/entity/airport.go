package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is one directory row mapping an IATA code to its city and IANA
// time zone
type Airport struct {
	ID          uint
	AirportCode string
	AirportName string
	CityName    string
	CountryCode string
	TzName      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
