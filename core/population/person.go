package population

import (
	"github.com/google/uuid"

	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/plan"
)

// Person owns exactly one plan for the simulated day. All plan editing by
// the policy layer goes through the person.
type Person struct {
	PID          string
	Freq         float64
	Attributes   map[string]string
	HomeLocation plan.Location
	Plan         *plan.Plan

	sink metrics.RepairSink
}

// NewPerson returns a person with an empty plan sharing the person's home
// location. An empty pid is replaced with a generated one.
func NewPerson(pid string, home plan.Location) *Person {
	if pid == "" {
		pid = uuid.NewString()
	}
	return &Person{
		PID:          pid,
		Attributes:   make(map[string]string),
		HomeLocation: home.Copy(),
		Plan:         plan.NewWithHome(home),
		sink:         metrics.NopSink{},
	}
}

// SetLogger injects a diagnostics logger into the person's plan.
func (p *Person) SetLogger(log logger.Logger) {
	p.Plan.SetLogger(log)
}

// SetMetricsSink injects the sink receiving edit events.
func (p *Person) SetMetricsSink(sink metrics.RepairSink) {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	p.sink = sink
}

// Home returns the explicit home location if set, else the plan's inferred
// one.
func (p *Person) Home() plan.Location {
	if p.HomeLocation.Exists() {
		return p.HomeLocation
	}
	return p.Plan.Home()
}

// Activities returns the activities of the person's plan.
func (p *Person) Activities() []*plan.Activity { return p.Plan.Activities() }

// Legs returns the legs of the person's plan.
func (p *Person) Legs() []*plan.Leg { return p.Plan.Legs() }

// RemoveActivity removes one activity from the plan at seq; see
// plan.Plan.RemoveActivity.
func (p *Person) RemoveActivity(seq int) (int, int, error) {
	idxStart, idxEnd, err := p.Plan.RemoveActivity(seq)
	if err == nil {
		p.sink.ActivityRemoved()
	}
	return idxStart, idxEnd, err
}

// FillPlan re-stitches the plan after an activity removal; see
// plan.Plan.FillPlan.
func (p *Person) FillPlan(idxStart, idxEnd int) error {
	return p.Plan.FillPlan(idxStart, idxEnd)
}

// MoveActivity relocates one activity, defaulting to home when to is nil.
func (p *Person) MoveActivity(seq int, to *plan.Location, newMode string) error {
	if err := p.Plan.MoveActivity(seq, to, newMode); err != nil {
		return err
	}
	if newMode != "" {
		p.sink.ModeShifted()
	}
	return nil
}

// ModeShift retargets the mode of the leg at seq and its tour; see
// plan.Plan.ModeShift.
func (p *Person) ModeShift(seq int, newMode string, speeds map[string]float64, updateDuration bool) error {
	if err := p.Plan.ModeShift(seq, newMode, speeds, updateDuration); err != nil {
		return err
	}
	p.sink.ModeShifted()
	return nil
}

// StayAtHome collapses the person's day to a single home activity.
func (p *Person) StayAtHome() {
	p.Plan.StayAtHome()
}

// TripFreq returns the person's frequency weight, falling back to the
// average leg frequency; ok is false when neither is available.
func (p *Person) TripFreq() (float64, bool) {
	if p.Freq != 0 {
		return p.Freq, true
	}
	legs := p.Legs()
	if len(legs) == 0 {
		return 0, false
	}
	var total float64
	for _, leg := range legs {
		if leg.Freq == 0 {
			return 0, false
		}
		total += leg.Freq
	}
	return total / float64(len(legs)), true
}
