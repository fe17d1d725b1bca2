package plan

import "time"

// The simulated day is anchored to an arbitrary reference date. Only the
// offset from StartOfDay is meaningful.
var (
	// StartOfDay is the fixed instant at which every plan begins.
	StartOfDay = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	// EndOfDay is the fixed instant at which every plan ends, 24 hours later.
	EndOfDay = StartOfDay.Add(24 * time.Hour)
)

// Minutes returns the instant n minutes after the start of the day.
func Minutes(n int) time.Time {
	return StartOfDay.Add(time.Duration(n) * time.Minute)
}

// DefaultModeSpeeds holds average mode speeds in km/h, taken from national
// travel survey data (NTS0303).
var DefaultModeSpeeds = map[string]float64{
	"car":   37,
	"bus":   10,
	"walk":  4,
	"cycle": 14,
	"pt":    23,
	"rail":  37,
}

// Interchange activity labels marking transfers within multi-leg transit
// trips.
var ptInterchangeLabels = map[string]bool{
	"pt interaction": true,
	"pt_interaction": true,
}

// IsInterchange reports whether the given activity label marks a public
// transit interchange.
func IsInterchange(act string) bool {
	return ptInterchangeLabels[act]
}
