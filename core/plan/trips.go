package plan

// SimplifyPTTrips collapses every chain of interchange activities and its
// flanking legs into a single leg with mode "pt" spanning the whole
// interchange. Plans without interchange activities are left untouched.
func (p *Plan) SimplifyPTTrips() {
	hasInterchange := false
	for class := range p.ActivityClasses() {
		if IsInterchange(class) {
			hasInterchange = true
			break
		}
	}
	if !hasInterchange || len(p.Day) == 0 {
		return
	}

	first, ok := p.Day[0].(*Activity)
	if !ok {
		return
	}

	day := []Component{first}
	lastKept := first
	var pending []*Leg
	seq := 0

	for _, c := range p.Day[1:] {
		switch v := c.(type) {
		case *Leg:
			pending = append(pending, v)
		case *Activity:
			if IsInterchange(v.Act) {
				continue
			}
			switch len(pending) {
			case 0:
			case 1:
				pending[0].Seq = seq
				day = append(day, pending[0])
			default:
				var distance float64
				for _, leg := range pending {
					distance += leg.Distance()
				}
				day = append(day, &Leg{
					TimeSpan:      TimeSpan{StartTime: lastKept.End(), EndTime: v.Start()},
					Seq:           seq,
					Mode:          "pt",
					Purpose:       v.Act,
					StartLocation: lastKept.Location.Copy(),
					EndLocation:   v.Location.Copy(),
					Dist:          distance,
				})
			}
			day = append(day, v)
			pending = nil
			lastKept = v
			seq++
		}
	}

	p.Day = day
}

// Trips returns the day's trips: each multi-leg interchange chain collapsed
// into one record carrying the dominant mode by accumulated distance.
// Durations and distances accumulate over the merged legs.
func (p *Plan) Trips() []*Leg {
	if len(p.Day) == 0 {
		return nil
	}
	origin, ok := p.Day[0].(*Activity)
	if !ok {
		return nil
	}

	var trips []*Leg
	modes := make(map[string]float64)
	var distance float64
	startLocation := origin.Location
	startTime := origin.End()
	seq := 0

	for _, c := range p.Day[1:] {
		switch v := c.(type) {
		case *Leg:
			modes[v.Mode] += v.Distance()
			distance += v.Distance()
		case *Activity:
			if IsInterchange(v.Act) {
				continue
			}
			if len(modes) > 0 {
				trips = append(trips, &Leg{
					TimeSpan:      TimeSpan{StartTime: startTime, EndTime: v.Start()},
					Seq:           seq,
					Mode:          dominantMode(modes),
					Purpose:       v.Act,
					StartLocation: startLocation.Copy(),
					EndLocation:   v.Location.Copy(),
					Dist:          distance,
				})
			}
			modes = make(map[string]float64)
			startLocation = v.Location
			startTime = v.End()
			distance = 0
			seq++
		}
	}
	return trips
}

// dominantMode picks the mode with the greatest accumulated distance,
// breaking ties lexicographically for determinism.
func dominantMode(modes map[string]float64) string {
	var best string
	bestDistance := -1.0
	for mode, d := range modes {
		if d > bestDistance || (d == bestDistance && mode < best) {
			best = mode
			bestDistance = d
		}
	}
	return best
}
