package plan

import "fmt"

// Activity is a stationary episode with a type label and a location. An
// empty Act means the label has not yet been inferred.
type Activity struct {
	TimeSpan
	Seq      int
	Act      string
	Location Location
	Freq     float64
}

// Kind implements Component.
func (a *Activity) Kind() ComponentKind { return KindActivity }

// Equal reports type and location equality, ignoring times. Locations with
// no shared representation compare unequal.
func (a *Activity) Equal(other *Activity) bool {
	if other == nil {
		return false
	}
	return a.Act == other.Act && a.Location.same(other.Location)
}

// IsExact additionally requires matching start and end times.
func (a *Activity) IsExact(other *Activity) bool {
	return a.Equal(other) &&
		a.StartTime.Equal(other.StartTime) &&
		a.EndTime.Equal(other.EndTime)
}

// IsInExact reports membership of the collection by exact match. Ordinary
// equality conflates distinct occurrences of the same activity type and
// place, so tour membership checks go through this.
func (a *Activity) IsInExact(activities []*Activity) bool {
	for _, other := range activities {
		if a.IsExact(other) {
			return true
		}
	}
	return false
}

func (a *Activity) String() string {
	return fmt.Sprintf("Activity(act:%s, location:%s, time:%s --> %s, duration:%s)",
		a.Act, a.Location, a.StartTime.Format("15:04:05"), a.EndTime.Format("15:04:05"), a.Duration())
}
