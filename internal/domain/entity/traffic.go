package entity

// TrafficEstimate is the drive-time answer for one pickup-to-airport route.
type TrafficEstimate struct {
	Seconds   int64
	Text      string
	Estimated bool // a fixed fallback replaced live data
}
