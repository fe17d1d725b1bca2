package plan

// RemoveActivity removes exactly one activity from the day at seq, never its
// flanking legs, and returns the indices of the surviving previous and
// subsequent activities, NoIdx where none survives. Wrap-boundary activities
// of a closed plan are removed at both ends.
func (p *Plan) RemoveActivity(seq int) (prevIdx, nextIdx int, err error) {
	act, err := p.activityAt(seq)
	if err != nil {
		return NoIdx, NoIdx, err
	}

	last := len(p.Day) - 1

	switch {
	case seq == 0 && seq == last:
		// the activity is the entire plan
		p.logger().Debugw("remove activity, plan now empty", map[string]any{"idx": seq, "act": act.Act})
		p.Day = nil
		return NoIdx, NoIdx, nil

	case (seq == 0 || seq == last) && p.Closed():
		// wrap-boundary activity, drop both ends
		p.logger().Debugw("remove activity, wraps", map[string]any{"idx": seq, "act": act.Act})
		p.Day = p.Day[1 : len(p.Day)-1]
		if len(p.Day) == 1 {
			// only a lone leg is left
			return NoIdx, NoIdx, nil
		}
		return len(p.Day) - 2, 1, nil

	case seq == 0:
		p.logger().Debugw("remove first activity", map[string]any{"idx": seq, "act": act.Act})
		p.Day = p.Day[1:]
		return NoIdx, 1, nil

	case seq == last:
		p.logger().Debugw("remove last activity", map[string]any{"idx": seq, "act": act.Act})
		p.Day = p.Day[:seq]
		return len(p.Day) - 2, NoIdx, nil

	default:
		p.logger().Debugw("remove activity", map[string]any{"idx": seq, "act": act.Act})
		p.remove(seq)
		return seq - 2, seq + 1, nil
	}
}

// FillPlan re-stitches the plan after RemoveActivity, using the neighbour
// indices it reported. The plan keeps the legs that flanked the removed
// activity; FillPlan merges or drops them and restores the 24-hour
// invariant.
func (p *Plan) FillPlan(idxStart, idxEnd int) error {
	p.logger().Debugf("fill plan %d -> %d", idxStart, idxEnd)

	switch {
	case idxStart == NoIdx && idxEnd == NoIdx:
		// nothing left, stay at home all day
		p.StayAtHome()
		return nil

	case idxStart == NoIdx:
		// start of day, non wrapping
		p.Day = p.Day[1:]
		p.Expand(idxEnd - 1)
		return nil

	case idxEnd == NoIdx:
		// end of day, non wrapping
		p.Day = p.Day[:len(p.Day)-1]
		p.Expand(idxStart)
		return nil

	case idxStart == idxEnd:
		// a single remaining activity; a home activity is required
		if p.LastPositionOf("home") == NoIdx {
			return ErrHomeRequired
		}
		p.StayAtHome()
		return nil
	}

	prev, err := p.activityAt(idxStart)
	if err != nil {
		return err
	}
	next, err := p.activityAt(idxEnd)
	if err != nil {
		return err
	}

	if prev.Equal(next) {
		if idxEnd < idxStart {
			return p.CombineWrappedActivities(idxStart, idxEnd)
		}
		return p.CombineMatchingActivities(idxStart, idxEnd)
	}

	if idxEnd < idxStart {
		// wrapped boundary between two different activities: drop both
		// boundary legs and pivot around home
		p.Day = p.Day[1 : len(p.Day)-1]
		pivot := p.LastPositionOf("home")
		if pivot == NoIdx {
			p.logger().Warnf("unable to find home activity, changing plan to stay at home")
			p.StayAtHome()
			return nil
		}
		p.Expand(pivot)
		return nil
	}

	return p.JoinActivities(idxStart, idxEnd)
}

// Expand restores the 24-hour invariant around a pivot activity: everything
// before the pivot is pushed forward from StartOfDay, everything after is
// pushed backward from EndOfDay, and the pivot absorbs exactly the freed
// interval.
func (p *Plan) Expand(pivotIdx int) {
	t := StartOfDay
	for i := 0; i <= pivotIdx; i++ {
		t = p.Day[i].ShiftStartTime(t)
	}
	t = EndOfDay
	for i := len(p.Day) - 1; i > pivotIdx; i-- {
		t = p.Day[i].ShiftEndTime(t)
	}
	p.Day[pivotIdx].SetEnd(t)
}

// JoinActivities merges the two legs flanking a removed activity into one,
// taking destination and purpose from the second, then pivot-expands around
// the last home activity.
func (p *Plan) JoinActivities(idxStart, idxEnd int) error {
	first, err := p.legAt(idxStart + 1)
	if err != nil {
		return err
	}
	second, err := p.legAt(idxEnd - 1)
	if err != nil {
		return err
	}
	first.EndLocation = second.EndLocation.Copy()
	first.Purpose = second.Purpose
	p.remove(idxEnd - 1)

	pivot := p.LastPositionOf("home")
	if pivot == NoIdx {
		p.logger().Warnf("unable to find home activity, changing plan to stay at home")
		p.StayAtHome()
		return nil
	}
	p.Expand(pivot)
	return nil
}

// CombineMatchingActivities merges two activity-equal neighbours of a
// removed activity into one, dropping the surplus legs.
func (p *Plan) CombineMatchingActivities(idxStart, idxEnd int) error {
	first, err := p.activityAt(idxStart)
	if err != nil {
		return err
	}
	second, err := p.activityAt(idxEnd)
	if err != nil {
		return err
	}
	first.SetEnd(second.End())
	p.remove(idxEnd)     // subsequent activity
	p.remove(idxEnd - 1) // subsequent leg
	p.remove(idxStart + 1)
	return nil
}

// CombineWrappedActivities merges two activity-equal day-boundary
// activities into one stay wrapping midnight, dropping the surplus legs.
func (p *Plan) CombineWrappedActivities(idxStart, idxEnd int) error {
	first, err := p.activityAt(idxStart)
	if err != nil {
		return err
	}
	second, err := p.activityAt(idxEnd)
	if err != nil {
		return err
	}
	first.SetEnd(EndOfDay)
	second.SetStart(StartOfDay)
	p.remove(idxStart + 1)
	p.remove(idxEnd - 1)
	return nil
}

// StayAtHome collapses the plan to a single all-day home activity.
func (p *Plan) StayAtHome() {
	home := p.Home()
	p.logger().Debugf("stay at home, location: %s", home)
	p.Day = []Component{&Activity{
		TimeSpan: TimeSpan{StartTime: StartOfDay, EndTime: EndOfDay},
		Seq:      1,
		Act:      "home",
		Location: home.Copy(),
	}}
}

// MoveActivity relocates the activity at seq (and the matching endpoints of
// its adjacent legs) to the given location, or to the inferred home
// location when to is nil. The adjacent legs, and any legs sharing their
// tours, switch to newMode.
func (p *Plan) MoveActivity(seq int, to *Location, newMode string) error {
	act, err := p.activityAt(seq)
	if err != nil {
		return err
	}

	location := p.Home()
	if to != nil {
		location = *to
	}

	act.Location = location.Copy()
	if seq != 0 {
		if leg, err := p.legAt(seq - 1); err == nil {
			leg.EndLocation = location.Copy()
		}
		if err := p.ModeShift(seq-1, newMode, nil, false); err != nil {
			return err
		}
	}
	if seq != len(p.Day)-1 {
		if leg, err := p.legAt(seq + 1); err == nil {
			leg.StartLocation = location.Copy()
		}
		if err := p.ModeShift(seq+1, newMode, nil, false); err != nil {
			return err
		}
	}
	return nil
}
