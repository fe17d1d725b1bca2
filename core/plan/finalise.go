package plan

// FinaliseActivityEndTimes closes a bulk-assigned day sequence: every
// activity but the last takes its end time from the next component's start,
// and the last component is extended to EndOfDay.
func (p *Plan) FinaliseActivityEndTimes() {
	if len(p.Day) == 0 {
		return
	}
	for idx := 0; idx < len(p.Day)-1; idx += 2 {
		p.Day[idx].SetEnd(p.Day[idx+1].Start())
	}
	p.Day[len(p.Day)-1].SetEnd(EndOfDay)
}

// SetLegPurposes sets each leg's purpose to the type of the next
// non-interchange activity in sequence.
func (p *Plan) SetLegPurposes() {
	for idx, c := range p.Day {
		leg, ok := c.(*Leg)
		if !ok {
			continue
		}
		for j := idx + 1; j < len(p.Day)-1; j += 2 {
			act, ok := p.Day[j].(*Activity)
			if !ok {
				continue
			}
			if !IsInterchange(act.Act) {
				leg.Purpose = act.Act
				break
			}
		}
	}
}

// Autocomplete fills each leg's start and end locations from its
// neighbouring activities. Used by readers that only carry activity
// locations.
func (p *Plan) Autocomplete() {
	for idx := 1; idx < len(p.Day)-1; idx++ {
		leg, ok := p.Day[idx].(*Leg)
		if !ok {
			continue
		}
		if prev, ok := p.Day[idx-1].(*Activity); ok {
			leg.StartLocation = prev.Location.Copy()
		}
		if next, ok := p.Day[idx+1].(*Activity); ok {
			leg.EndLocation = next.Location.Copy()
		}
	}
}
