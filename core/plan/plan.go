package plan

import (
	"strings"

	"github.com/kilianp07/dayplan/core/logger"
)

// NoIdx marks the absence of a component index, for example a removed
// activity with no surviving neighbour.
const NoIdx = -1

// Plan is one person's ordered activity/leg sequence for a single day. It is
// exclusively owned by that person and must not be mutated concurrently.
//
// Day may be assigned directly by readers, in which case
// FinaliseActivityEndTimes must be called before the plan is used.
type Plan struct {
	Day          []Component
	HomeLocation Location
	Freq         float64

	log logger.Logger
}

// New returns an empty plan with a no-op logger.
func New() *Plan {
	return &Plan{log: logger.Nop{}}
}

// NewWithHome returns an empty plan anchored at the given home location.
func NewWithHome(home Location) *Plan {
	p := New()
	p.HomeLocation = home.Copy()
	return p
}

// SetLogger injects a diagnostics logger. A nil logger resets to no-op.
func (p *Plan) SetLogger(log logger.Logger) {
	if log == nil {
		p.log = logger.Nop{}
		return
	}
	p.log = log
}

// Length returns the number of components in the day.
func (p *Plan) Length() int { return len(p.Day) }

// At returns the component at idx, or false when idx is out of range.
func (p *Plan) At(idx int) (Component, bool) {
	if idx < 0 || idx >= len(p.Day) {
		return nil, false
	}
	return p.Day[idx], true
}

// Activities returns the activities of the day in order.
func (p *Plan) Activities() []*Activity {
	var acts []*Activity
	for _, c := range p.Day {
		if a, ok := c.(*Activity); ok {
			acts = append(acts, a)
		}
	}
	return acts
}

// Legs returns the legs of the day in order.
func (p *Plan) Legs() []*Leg {
	var legs []*Leg
	for _, c := range p.Day {
		if l, ok := c.(*Leg); ok {
			legs = append(legs, l)
		}
	}
	return legs
}

// ActivityClasses returns the set of activity labels in the plan.
func (p *Plan) ActivityClasses() map[string]bool {
	classes := make(map[string]bool)
	for _, a := range p.Activities() {
		classes[a.Act] = true
	}
	return classes
}

// ModeClasses returns the set of leg modes in the plan.
func (p *Plan) ModeClasses() map[string]bool {
	modes := make(map[string]bool)
	for _, l := range p.Legs() {
		modes[l.Mode] = true
	}
	return modes
}

// Home returns the explicit home location if set, else the location of the
// first activity labelled home, else the location of the first component.
func (p *Plan) Home() Location {
	if p.HomeLocation.Exists() {
		return p.HomeLocation
	}
	for _, a := range p.Activities() {
		if strings.HasPrefix(strings.ToLower(a.Act), "home") {
			return a.Location
		}
	}
	if len(p.Day) > 0 {
		if a, ok := p.Day[0].(*Activity); ok {
			return a.Location
		}
	}
	return Location{}
}

// HomeBased reports whether the day starts with a home activity.
func (p *Plan) HomeBased() bool {
	if len(p.Day) == 0 {
		return false
	}
	a, ok := p.Day[0].(*Activity)
	return ok && strings.ToLower(a.Act) == "home"
}

// Closed reports whether the first and last components are activities equal
// by type and location, ie the plan wraps across midnight.
func (p *Plan) Closed() bool {
	if len(p.Day) == 0 {
		return false
	}
	first, ok := p.Day[0].(*Activity)
	if !ok {
		return false
	}
	last, ok := p.Day[len(p.Day)-1].(*Activity)
	if !ok {
		return false
	}
	return first.Equal(last)
}

// Add appends a component, enforcing the activity-leg alternation: an
// activity may only follow a leg (or start the plan), a leg may only follow
// an activity.
func (p *Plan) Add(c Component) error {
	switch c.Kind() {
	case KindActivity:
		if len(p.Day) > 0 && p.Day[len(p.Day)-1].Kind() == KindActivity {
			return ErrSequence
		}
	case KindLeg:
		if len(p.Day) == 0 {
			return ErrSequence
		}
		if p.Day[len(p.Day)-1].Kind() != KindActivity {
			return ErrSequence
		}
	}
	p.Day = append(p.Day, c)
	return nil
}

// Clear empties the day sequence.
func (p *Plan) Clear() {
	p.Day = nil
}

// FirstPositionOf returns the index of the first activity with the given
// label (case-insensitive), or NoIdx.
func (p *Plan) FirstPositionOf(target string) int {
	for i, c := range p.Day {
		if a, ok := c.(*Activity); ok && strings.ToLower(a.Act) == target {
			return i
		}
	}
	return NoIdx
}

// LastPositionOf returns the index of the last activity with the given label
// (case-insensitive), or NoIdx.
func (p *Plan) LastPositionOf(target string) int {
	pos := NoIdx
	for i, c := range p.Day {
		if a, ok := c.(*Activity); ok && strings.ToLower(a.Act) == target {
			pos = i
		}
	}
	return pos
}

// logger returns the injected logger, defaulting to no-op so that plans
// built by struct literal stay safe to use.
func (p *Plan) logger() logger.Logger {
	if p.log == nil {
		return logger.Nop{}
	}
	return p.log
}

// activityAt returns the activity at idx or ErrNotActivity.
func (p *Plan) activityAt(idx int) (*Activity, error) {
	if idx < 0 || idx >= len(p.Day) {
		return nil, ErrNotActivity
	}
	a, ok := p.Day[idx].(*Activity)
	if !ok {
		return nil, ErrNotActivity
	}
	return a, nil
}

// legAt returns the leg at idx or ErrNotLeg.
func (p *Plan) legAt(idx int) (*Leg, error) {
	if idx < 0 || idx >= len(p.Day) {
		return nil, ErrNotLeg
	}
	l, ok := p.Day[idx].(*Leg)
	if !ok {
		return nil, ErrNotLeg
	}
	return l, nil
}

// remove drops the component at idx.
func (p *Plan) remove(idx int) {
	p.Day = append(p.Day[:idx], p.Day[idx+1:]...)
}
