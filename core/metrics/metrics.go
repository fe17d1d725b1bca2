package metrics

// RepairSink records plan repair and edit events. Implementations live under
// infra/metrics; core packages only depend on this interface.
type RepairSink interface {
	PlanRepaired()
	PlanInvalid()
	ActivityRemoved()
	ModeShifted()
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) PlanRepaired()    {}
func (NopSink) PlanInvalid()     {}
func (NopSink) ActivityRemoved() {}
func (NopSink) ModeShifted()     {}
