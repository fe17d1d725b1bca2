package plan

// FixConfig toggles the individual repair stages applied by Fix.
type FixConfig struct {
	Crop      bool `json:"crop"`
	Times     bool `json:"times"`
	Locations bool `json:"locations"`
}

// DefaultFixConfig enables every repair stage.
func DefaultFixConfig() FixConfig {
	return FixConfig{Crop: true, Times: true, Locations: true}
}

// Fix applies Crop, FixTimeConsistency and FixLocationConsistency in that
// order, each independently toggleable. Applied to any plan holding at least
// one activity the result satisfies IsValid.
func (p *Plan) Fix(cfg FixConfig) {
	if cfg.Crop {
		p.Crop()
	}
	if cfg.Times {
		p.FixTimeConsistency()
	}
	if cfg.Locations {
		p.FixLocationConsistency()
	}
}

// Crop repairs a plan to fit the simulated day. Components starting beyond
// EndOfDay are dropped, the plan is truncated at the first out-of-sequence
// component, and the surviving tail activity is extended to EndOfDay. A
// trailing leg is dropped and the previous activity extended instead. Crop
// is idempotent.
func (p *Plan) Crop() {
	// components starting beyond the end of day
	for i := len(p.Day) - 1; i >= 0; i-- {
		if !p.Day[i].Start().After(EndOfDay) {
			break
		}
		p.logger().Debugw("cropping component beyond end of day", map[string]any{"idx": i})
		p.Day = p.Day[:i]
	}

	// truncate at the first out-of-sequence component
	for i := 1; i < len(p.Day); i++ {
		if p.Day[i].Start().Before(p.Day[i-1].End()) {
			p.logger().Debugw("cropping out-of-sequence components", map[string]any{"idx": i})
			p.Day = p.Day[:i]
			break
		}
		if p.Day[i].Start().After(p.Day[i].End()) {
			p.logger().Debugw("cropping inverted component", map[string]any{"idx": i})
			p.Day = p.Day[:i+1]
			break
		}
	}

	if len(p.Day) == 0 {
		return
	}

	// the day must end with an activity at EndOfDay
	if last, ok := p.Day[len(p.Day)-1].(*Activity); ok {
		last.SetEnd(EndOfDay)
		return
	}
	p.logger().Debugf("cropping plan ending in leg")
	p.Day = p.Day[:len(p.Day)-1]
	if len(p.Day) == 0 {
		return
	}
	p.Day[len(p.Day)-1].SetEnd(EndOfDay)
}

// FixTimeConsistency forces each component to start when its predecessor
// ends, preserving durations so any free time threads forward.
func (p *Plan) FixTimeConsistency() {
	for i := 0; i < len(p.Day)-1; i++ {
		p.Day[i+1].ShiftStartTime(p.Day[i].End())
	}
}

// FixLocationConsistency copies each interior leg's neighbouring activity
// locations onto its endpoints.
func (p *Plan) FixLocationConsistency() {
	for i := 1; i < len(p.Day)-1; i++ {
		leg, ok := p.Day[i].(*Leg)
		if !ok {
			continue
		}
		if prev, ok := p.Day[i-1].(*Activity); ok {
			leg.StartLocation = prev.Location.Copy()
		}
		if next, ok := p.Day[i+1].(*Activity); ok {
			leg.EndLocation = next.Location.Copy()
		}
	}
}
