package plan

// ValidSequence reports whether the day alternates activity, leg, activity,
// ... with activities at both ends. An empty plan is not a valid sequence.
func (p *Plan) ValidSequence() bool {
	if len(p.Day) == 0 {
		return false
	}
	for i, c := range p.Day {
		want := KindActivity
		if i%2 == 1 {
			want = KindLeg
		}
		if c.Kind() != want {
			return false
		}
	}
	return p.Day[len(p.Day)-1].Kind() == KindActivity
}

// ValidTimes reports whether consecutive components chain end-to-start.
// Day-bound anchoring is checked separately by ValidStartOfDay and
// ValidEndOfDay; see DESIGN.md for why it is kept out of IsValid.
func (p *Plan) ValidTimes() bool {
	if len(p.Day) == 0 {
		return false
	}
	for i := 0; i < len(p.Day)-1; i++ {
		if !p.Day[i].End().Equal(p.Day[i+1].Start()) {
			return false
		}
	}
	return true
}

// ValidStartOfDay reports whether the first component starts at StartOfDay.
func (p *Plan) ValidStartOfDay() bool {
	return len(p.Day) > 0 && p.Day[0].Start().Equal(StartOfDay)
}

// ValidEndOfDay reports whether the last component ends at EndOfDay.
func (p *Plan) ValidEndOfDay() bool {
	return len(p.Day) > 0 && p.Day[len(p.Day)-1].End().Equal(EndOfDay)
}

// ValidLocations reports whether every leg starts at the location of the
// preceding activity and ends at the location of the following one.
// Incomparable locations count as a mismatch.
func (p *Plan) ValidLocations() bool {
	for i := 1; i < len(p.Day); i++ {
		switch c := p.Day[i].(type) {
		case *Activity:
			prev, ok := p.Day[i-1].(*Leg)
			if !ok || !c.Location.same(prev.EndLocation) {
				return false
			}
		case *Leg:
			prev, ok := p.Day[i-1].(*Activity)
			if !ok || !c.StartLocation.same(prev.Location) {
				return false
			}
		}
	}
	return true
}

// IsValid is the conjunction of sequence, time and location validity.
func (p *Plan) IsValid() bool {
	return p.ValidSequence() && p.ValidTimes() && p.ValidLocations()
}

// ValidateSequence returns ErrSequence when the alternation invariant is
// unmet.
func (p *Plan) ValidateSequence() error {
	if !p.ValidSequence() {
		return ErrSequence
	}
	return nil
}

// ValidateTimes returns ErrTimes when the temporal chain is broken.
func (p *Plan) ValidateTimes() error {
	if !p.ValidTimes() {
		return ErrTimes
	}
	return nil
}

// ValidateLocations returns ErrLocations when spatial adjacency is broken.
func (p *Plan) ValidateLocations() error {
	if !p.ValidLocations() {
		return ErrLocations
	}
	return nil
}

// Validate runs all three validations and returns the first failure.
func (p *Plan) Validate() error {
	if err := p.ValidateSequence(); err != nil {
		return err
	}
	if err := p.ValidateTimes(); err != nil {
		return err
	}
	return p.ValidateLocations()
}
