// internal/domain/entity/attraction.go
package entity

// Attraction is one knowledge-base document describing a visitable place.
// Field keys mirror the dataset's column headers so documents round-trip
// unchanged between backends.
type Attraction struct {
	Name         string  `bson:"Name" json:"name"`
	Type         string  `bson:"Type" json:"type"`
	Significance string  `bson:"Significance" json:"significance"`
	City         string  `bson:"City" json:"city"`
	EntranceFee  int64   `bson:"Entrance Fee in INR" json:"entranceFeeInr"`
	VisitHours   float64 `bson:"time needed to visit in hrs" json:"visitHours"`
	BestTime     string  `bson:"Best Time to visit" json:"bestTime"`
	Rating       float64 `bson:"Google review rating" json:"rating"`
}
