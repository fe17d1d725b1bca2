package plan

import "time"

// ComponentKind discriminates the two members of a day sequence.
type ComponentKind int

const (
	KindActivity ComponentKind = iota
	KindLeg
)

// Component is a single entry in a day sequence: either an *Activity or a
// *Leg. The Kind discriminant allows exhaustive handling without reflection.
type Component interface {
	Kind() ComponentKind
	Start() time.Time
	End() time.Time
	SetStart(t time.Time)
	SetEnd(t time.Time)
	Duration() time.Duration
	ShiftStartTime(newStart time.Time) time.Time
	ShiftEndTime(newEnd time.Time) time.Time
}

// TimeSpan carries the shared timing behaviour of activities and legs.
type TimeSpan struct {
	StartTime time.Time
	EndTime   time.Time
}

// Start returns the span start instant.
func (s *TimeSpan) Start() time.Time { return s.StartTime }

// End returns the span end instant.
func (s *TimeSpan) End() time.Time { return s.EndTime }

// SetStart sets the span start instant without touching the end.
func (s *TimeSpan) SetStart(t time.Time) { s.StartTime = t }

// SetEnd sets the span end instant without touching the start.
func (s *TimeSpan) SetEnd(t time.Time) { s.EndTime = t }

// Duration returns end minus start.
func (s *TimeSpan) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// ShiftStartTime moves the span to the given start, preserving duration, and
// returns the new end.
func (s *TimeSpan) ShiftStartTime(newStart time.Time) time.Time {
	d := s.Duration()
	s.StartTime = newStart
	s.EndTime = newStart.Add(d)
	return s.EndTime
}

// ShiftEndTime moves the span to the given end, preserving duration, and
// returns the new start.
func (s *TimeSpan) ShiftEndTime(newEnd time.Time) time.Time {
	d := s.Duration()
	s.EndTime = newEnd
	s.StartTime = newEnd.Add(-d)
	return s.StartTime
}

// ShiftDuration sets a new duration, optionally re-anchoring the start, and
// returns the new end.
func (s *TimeSpan) ShiftDuration(d time.Duration, newStart *time.Time) time.Time {
	if newStart != nil {
		s.StartTime = *newStart
	}
	s.EndTime = s.StartTime.Add(d)
	return s.EndTime
}
