package plan

import (
	"sort"
	"strings"
	"time"
)

// ActivityTours partitions the activity list into maximal runs of non-home
// activities, split at every home activity. Home activities are excluded
// from the result and empty runs are dropped.
func (p *Plan) ActivityTours() [][]*Activity {
	var tours [][]*Activity
	var tour []*Activity
	for _, act := range p.Activities() {
		if act.Act == "home" {
			if len(tour) > 0 {
				tours = append(tours, tour)
			}
			tour = nil
			continue
		}
		tour = append(tour, act)
	}
	if len(tour) > 0 {
		tours = append(tours, tour)
	}
	return tours
}

// ClosedDuration returns the duration of the component at idx, combining the
// first and last durations when the plan is closed and idx addresses either
// end, so a midnight-wrapping stay counts as one episode.
func (p *Plan) ClosedDuration(idx int) time.Duration {
	if p.Closed() && (idx == 0 || idx == len(p.Day)-1) {
		return p.Day[0].Duration() + p.Day[len(p.Day)-1].Duration()
	}
	if idx < 0 || idx >= len(p.Day) {
		return 0
	}
	return p.Day[idx].Duration()
}

// InferActivityIdxs returns the day indices of activities located at target,
// in ascending order.
//
// When a leg both starts and ends at target (a there-and-back loop), the
// flanking activity with the smaller closed duration is excluded so one stay
// is not counted as two. This tie-break is untested upstream for more than
// two consecutive same-location loops; see DESIGN.md.
//
// When no candidate remains and useDefault is set, the first activity is
// assumed (and the last too, when the plan is closed).
func (p *Plan) InferActivityIdxs(target Location, useDefault bool) []int {
	exclude := make(map[int]bool)

	for i, leg := range p.Legs() {
		prevActIdx := 2 * i
		nextActIdx := prevActIdx + 2
		if leg.StartLocation.same(target) && leg.EndLocation.same(target) {
			if p.ClosedDuration(prevActIdx) > p.ClosedDuration(nextActIdx) {
				exclude[nextActIdx] = true
			} else {
				exclude[prevActIdx] = true
			}
		}
	}

	var candidates []int
	for i, act := range p.Activities() {
		idx := 2 * i
		if act.Location.same(target) && !exclude[idx] {
			candidates = append(candidates, idx)
		}
	}

	if useDefault && len(candidates) == 0 {
		if p.Closed() {
			return []int{0, len(p.Day) - 1}
		}
		return []int{0}
	}

	sort.Ints(candidates)
	return candidates
}

// InferActivitiesFromTourPurpose infers and sets unlabeled activity types
// from the purposes recorded on legs. The search is seeded at the inferred
// home indices and walked breadth-first in two phases, forward first, since
// diaries are assumed originally recorded forward from home.
//
// A candidate label equal to the previously assigned one is replaced by the
// label already mapped to the destination location, which collapses repeat
// visits to one place under one purpose.
func (p *Plan) InferActivitiesFromTourPurpose() {
	homeIdxs := p.InferActivityIdxs(p.Home(), true)
	for _, idx := range homeIdxs {
		if a, ok := p.Day[idx].(*Activity); ok {
			a.Act = "home"
		}
	}

	areaMap := make(map[string]string)
	var areaOrder []string
	record := func(location, act string) {
		if _, seen := areaMap[location]; !seen {
			areaOrder = append(areaOrder, location)
		}
		areaMap[location] = act
	}

	remaining := make(map[int]bool)
	for idx := 0; idx < len(p.Day); idx += 2 {
		remaining[idx] = true
	}
	for _, idx := range homeIdxs {
		delete(remaining, idx)
	}

	var lastAct string

	// forward traverse from home
	var queue []int
	for _, idx := range homeIdxs {
		if idx+2 < len(p.Day) {
			queue = append(queue, idx+2)
		}
	}
	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		act, ok := p.Day[idx].(*Activity)
		if !ok || act.Act != "" {
			continue
		}
		leg, ok := p.Day[idx-1].(*Leg)
		if !ok {
			continue
		}
		label := strings.ToLower(leg.Purpose)
		location := act.Location.Min()
		if label == lastAct {
			if mapped, seen := areaMap[location]; seen {
				label = mapped
			}
		}
		act.Act = label
		delete(remaining, idx)
		lastAct = label
		record(location, label)

		if remaining[idx+2] {
			queue = append(queue, idx+2)
		}
	}

	// re-apply discovered location labels to unlabeled activities at the
	// same places before falling back to leg purposes
	queue = nil
	for _, location := range areaOrder {
		label := areaMap[location]
		for _, idx := range p.InferActivityIdxs(Location{Area: location}, false) {
			if !remaining[idx] {
				continue
			}
			if a, ok := p.Day[idx].(*Activity); ok {
				a.Act = label
			}
			delete(remaining, idx)
			if remaining[idx+2] {
				queue = append(queue, idx+2)
			}
		}
	}
	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		act, ok := p.Day[idx].(*Activity)
		if !ok || act.Act != "" {
			continue
		}
		leg, ok := p.Day[idx-1].(*Leg)
		if !ok {
			continue
		}
		label := strings.ToLower(leg.Purpose)
		location := act.Location.Min()
		if label == lastAct {
			if mapped, seen := areaMap[location]; seen {
				label = mapped
			}
		}
		act.Act = label
		delete(remaining, idx)
		lastAct = label
		record(location, label)

		if idx+2 < len(p.Day) {
			queue = append(queue, idx+2)
		}
	}

	// backward traverse for anything still unlabeled, using the purpose of
	// the following leg
	queue = sortedIdxs(remaining)
	for len(queue) > 0 {
		idx := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		act, ok := p.Day[idx].(*Activity)
		if !ok || act.Act != "" || idx+1 >= len(p.Day) {
			continue
		}
		leg, ok := p.Day[idx+1].(*Leg)
		if !ok {
			continue
		}
		label := strings.ToLower(leg.Purpose)
		location := act.Location.Min()
		if label == lastAct {
			if mapped, seen := areaMap[location]; seen {
				label = mapped
			}
		}
		act.Act = label
		delete(remaining, idx)
		lastAct = label
		record(location, label)

		if idx-2 >= 0 {
			queue = append(queue, idx-2)
		}
	}
}

func sortedIdxs(set map[int]bool) []int {
	idxs := make([]int, 0, len(set))
	for idx := range set {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}
