package metrics

import (
	coremetrics "github.com/kilianp07/dayplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records plan repair and edit events in Prometheus metrics.
type PromSink struct {
	repaired prometheus.Counter
	invalid  prometheus.Counter
	removed  prometheus.Counter
	shifted  prometheus.Counter
}

// NewPromSink registers repair metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.Addr.
func NewPromSink() (coremetrics.RepairSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.RepairSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	repaired := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plans_repaired_total",
		Help: "Total number of plans passed through repair",
	})
	invalid := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plans_invalid_total",
		Help: "Number of plans still invalid after repair",
	})
	removed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "activities_removed_total",
		Help: "Total number of activities removed by plan edits",
	})
	shifted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "legs_mode_shifted_total",
		Help: "Total number of plans rerouted to a new mode",
	})

	counters := []*prometheus.Counter{&repaired, &invalid, &removed, &shifted}
	for _, c := range counters {
		if err := reg.Register(*c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*c = are.ExistingCollector.(prometheus.Counter)
			} else {
				return nil, err
			}
		}
	}

	return &PromSink{repaired: repaired, invalid: invalid, removed: removed, shifted: shifted}, nil
}

// PlanRepaired increments the repaired plan counter.
func (s *PromSink) PlanRepaired() { s.repaired.Inc() }

// PlanInvalid increments the counter of plans left invalid after repair.
func (s *PromSink) PlanInvalid() { s.invalid.Inc() }

// ActivityRemoved increments the removed activity counter.
func (s *PromSink) ActivityRemoved() { s.removed.Inc() }

// ModeShifted increments the mode shift counter.
func (s *PromSink) ModeShifted() { s.shifted.Inc() }
