package plan

import "time"

// GetLegTour returns the tour the leg at seq belongs to, matching the leg's
// flanking activities against tour members by exact identity. A leg between
// two home activities belongs to no tour and returns nil.
func (p *Plan) GetLegTour(seq int) ([]*Activity, error) {
	if _, err := p.legAt(seq); err != nil {
		return nil, err
	}
	from, err := p.activityAt(seq - 1)
	if err != nil {
		return nil, err
	}
	to, err := p.activityAt(seq + 1)
	if err != nil {
		return nil, err
	}
	for _, tour := range p.ActivityTours() {
		for _, act := range tour {
			if from.IsExact(act) || to.IsExact(act) {
				return tour, nil
			}
		}
	}
	return nil, nil
}

// ModeShift retargets the mode of the leg at seq, unconditionally, and of
// every other leg belonging to the same tour. A leg outside any tour, such
// as a home-to-home loop, shifts alone. Speeds is an average speed table in
// km/h, defaulting to DefaultModeSpeeds. When updateDuration is set, each
// shifted leg's duration is rescaled by the old-to-new speed ratio, home
// activity durations are shrunk proportionally so the day still sums to 24
// hours, and the final end time is forced to EndOfDay to absorb rounding
// drift.
func (p *Plan) ModeShift(seq int, newMode string, speeds map[string]float64, updateDuration bool) error {
	if speeds == nil {
		speeds = DefaultModeSpeeds
	}
	tour, err := p.GetLegTour(seq)
	if err != nil {
		return err
	}

	for idx, c := range p.Day {
		leg, ok := c.(*Leg)
		if !ok {
			continue
		}
		if idx != seq && !p.legInTour(idx, tour) {
			continue
		}
		var shift time.Duration
		if updateDuration {
			ratio := speeds[leg.Mode] / speeds[newMode]
			shift = time.Duration(ratio*float64(leg.Duration())) - leg.Duration()
		}
		leg.Mode = newMode
		if updateDuration {
			p.ChangeDuration(idx, shift)
		}
	}

	if updateDuration {
		p.rebalanceHomeDurations()
	}
	return nil
}

// legInTour reports whether the leg at idx has a flanking activity that is
// an exact member of tour.
func (p *Plan) legInTour(idx int, tour []*Activity) bool {
	if len(tour) == 0 {
		return false
	}
	from, err := p.activityAt(idx - 1)
	if err != nil {
		return false
	}
	to, err := p.activityAt(idx + 1)
	if err != nil {
		return false
	}
	for _, act := range tour {
		if from.IsExact(act) || to.IsExact(act) {
			return true
		}
	}
	return false
}

// rebalanceHomeDurations shrinks every home activity proportionally so the
// day fits the 24-hour bound again, then pins the final end time to
// EndOfDay.
func (p *Plan) rebalanceHomeDurations() {
	if len(p.Day) == 0 {
		return
	}
	homeDuration := p.HomeDuration()
	if homeDuration > 0 {
		overrun := p.Day[len(p.Day)-1].End().Sub(EndOfDay)
		factor := float64(overrun) / float64(homeDuration)
		for idx, c := range p.Day {
			act, ok := c.(*Activity)
			if !ok || act.Act != "home" {
				continue
			}
			shift := time.Duration(-factor * float64(act.Duration())).Round(time.Second)
			p.ChangeDuration(idx, shift)
		}
	}
	if !p.Day[len(p.Day)-1].End().Equal(EndOfDay) {
		p.Day[len(p.Day)-1].SetEnd(EndOfDay)
	}
}

// ChangeDuration changes the duration of the component at seq by delta and
// shifts every subsequent component accordingly.
func (p *Plan) ChangeDuration(seq int, delta time.Duration) {
	p.Day[seq].SetEnd(p.Day[seq].End().Add(delta))
	for idx := seq + 1; idx < len(p.Day); idx++ {
		p.Day[idx].ShiftStartTime(p.Day[idx].Start().Add(delta))
	}
}

// HomeDuration returns the total time spent at home activities.
func (p *Plan) HomeDuration() time.Duration {
	var total time.Duration
	for _, act := range p.Activities() {
		if act.Act == "home" {
			total += act.Duration()
		}
	}
	return total
}
