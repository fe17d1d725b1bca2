package plan

import (
	"fmt"
	"math"
	"time"
)

// Route carries transit metadata recovered from simulated plans. The zero
// value means the leg has no recorded route.
type Route struct {
	ServiceID    string
	RouteID      string
	OStop        string
	DStop        string
	BoardingTime time.Time
	// Network holds link ids for network-routed legs.
	Network []string
}

// Exists reports whether any route detail is recorded.
func (r Route) Exists() bool {
	return r.ServiceID != "" || r.RouteID != "" || len(r.Network) > 0
}

// Leg is a travel episode between two activities.
type Leg struct {
	TimeSpan
	Seq           int
	Mode          string
	Purpose       string
	StartLocation Location
	EndLocation   Location
	// Dist is an explicit distance in metres. Zero means no distance was
	// recorded and Distance falls back to the euclidean estimate.
	Dist  float64
	Freq  float64
	Route Route
}

// Kind implements Component.
func (l *Leg) Kind() ComponentKind { return KindLeg }

// Equal compares start and end location, mode and duration.
func (l *Leg) Equal(other *Leg) bool {
	if other == nil {
		return false
	}
	return l.StartLocation.same(other.StartLocation) &&
		l.EndLocation.same(other.EndLocation) &&
		l.Mode == other.Mode &&
		l.Duration() == other.Duration()
}

// Distance returns the recorded distance in metres, falling back to the
// scaled euclidean estimate when none was recorded.
func (l *Leg) Distance() float64 {
	if l.Dist != 0 {
		return l.Dist
	}
	return l.EuclideanDistance() * 1000
}

// EuclideanDistance returns the straight-line distance between the leg
// endpoints divided by 1000. The upstream scale mixing between the km
// intermediate and the metre result in Distance is kept as-is; see
// DESIGN.md.
func (l *Leg) EuclideanDistance() float64 {
	if l.StartLocation.Loc == nil || l.EndLocation.Loc == nil {
		return 0
	}
	return math.Hypot(
		l.EndLocation.Loc.X-l.StartLocation.Loc.X,
		l.EndLocation.Loc.Y-l.StartLocation.Loc.Y,
	) / 1000
}

func (l *Leg) String() string {
	return fmt.Sprintf("Leg(mode:%s, location:%s --> %s, time:%s --> %s, duration:%s)",
		l.Mode, l.StartLocation, l.EndLocation,
		l.StartTime.Format("15:04:05"), l.EndTime.Format("15:04:05"), l.Duration())
}
