package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTourPlan(t *testing.T) *Plan {
	t.Helper()
	p := New()
	acts := []string{"home", "shop", "education", "home", "shop", "work", "home"}
	areas := []string{"a", "b", "c", "a", "d", "e", "a"}
	start := 0
	for i, label := range acts {
		if i > 0 {
			mustAdd(p, tleg(i, "car", areas[i-1], areas[i], start, start+10))
			start += 10
		}
		end := start + 100
		if i == len(acts)-1 {
			end = 24 * 60
		}
		mustAdd(p, tact(i+1, label, areas[i], start, end))
		start = end
	}
	return p
}

func TestActivityTours(t *testing.T) {
	p := buildTourPlan(t)
	tours := p.ActivityTours()
	require.Len(t, tours, 2)

	var got [][]string
	for _, tour := range tours {
		var labels []string
		for _, act := range tour {
			labels = append(labels, act.Act)
		}
		got = append(got, labels)
	}
	assert.Equal(t, [][]string{{"shop", "education"}, {"shop", "work"}}, got)
}

func TestActivityToursAllHome(t *testing.T) {
	p := New()
	mustAdd(p, tact(1, "home", "a", 0, 24*60))
	assert.Empty(t, p.ActivityTours())
}

func TestClosedDuration(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "home", "a", 0, 60),
		tleg(1, "car", "a", "b", 60, 90),
		tact(2, "work", "b", 90, 1200),
		tleg(2, "car", "b", "a", 1200, 1230),
		tact(3, "home", "a", 1230, 24*60),
	)
	require.True(t, p.Closed())
	want := 60*time.Minute + (24*60-1230)*time.Minute
	assert.Equal(t, want, p.ClosedDuration(0))
	assert.Equal(t, want, p.ClosedDuration(4))
	assert.Equal(t, 1110*time.Minute, p.ClosedDuration(2))
}

func TestInferActivityIdxsSimple(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "", "h", 0, 400),
		tleg(1, "car", "h", "w", 400, 430),
		tact(2, "", "w", 430, 1000),
		tleg(2, "car", "w", "h", 1000, 1030),
		tact(3, "", "h", 1030, 24*60),
	)
	idxs := p.InferActivityIdxs(Location{Area: "h"}, false)
	assert.Equal(t, []int{0, 4}, idxs)
}

func TestInferActivityIdxsLoopLegExcludesShorterStay(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "", "a", 0, 60),
		tleg(1, "walk", "a", "a", 60, 70),
		tact(2, "", "a", 70, 200),
		tleg(2, "car", "a", "b", 200, 210),
		tact(3, "", "b", 210, 24*60),
	)
	// the loop leg flanks idx 0 (60m) and idx 2 (130m); the shorter stay is
	// excluded so one visit is not double counted
	idxs := p.InferActivityIdxs(Location{Area: "a"}, false)
	assert.Equal(t, []int{2}, idxs)
}

func TestInferActivityIdxsDefault(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "", "x", 0, 400),
		tleg(1, "car", "x", "y", 400, 430),
		tact(2, "", "y", 430, 24*60),
	)
	idxs := p.InferActivityIdxs(Location{Area: "z"}, true)
	assert.Equal(t, []int{0}, idxs)
}

func TestInferActivityIdxsDefaultClosed(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "", "x", 0, 400),
		tleg(1, "car", "x", "y", 400, 430),
		tact(2, "", "y", 430, 1000),
		tleg(2, "car", "y", "x", 1000, 1030),
		tact(3, "", "x", 1030, 24*60),
	)
	idxs := p.InferActivityIdxs(Location{Area: "z"}, true)
	assert.Equal(t, []int{0, 4}, idxs)
}

func TestInferActivitiesFromTourPurpose(t *testing.T) {
	p := NewWithHome(Location{Area: "h"})
	mustAdd(p,
		tact(1, "", "h", 0, 400),
		&Leg{TimeSpan: TimeSpan{StartTime: Minutes(400), EndTime: Minutes(430)}, Seq: 1, Mode: "car", Purpose: "work", StartLocation: Location{Area: "h"}, EndLocation: Location{Area: "w"}},
		tact(2, "", "w", 430, 1000),
		&Leg{TimeSpan: TimeSpan{StartTime: Minutes(1000), EndTime: Minutes(1030)}, Seq: 2, Mode: "car", Purpose: "home", StartLocation: Location{Area: "w"}, EndLocation: Location{Area: "h"}},
		tact(3, "", "h", 1030, 24*60),
	)
	p.InferActivitiesFromTourPurpose()
	assert.Equal(t, []string{"home", "work", "home"}, labels(p))
}

func TestInferActivitiesBackwardPhase(t *testing.T) {
	p := NewWithHome(Location{Area: "h"})
	mustAdd(p,
		tact(1, "", "s", 0, 200),
		&Leg{TimeSpan: TimeSpan{StartTime: Minutes(200), EndTime: Minutes(230)}, Seq: 1, Mode: "bus", Purpose: "home", StartLocation: Location{Area: "s"}, EndLocation: Location{Area: "h"}},
		tact(2, "", "h", 230, 24*60),
	)
	p.InferActivitiesFromTourPurpose()
	// the first activity has no leading leg; it resolves backward from the
	// purpose of the following leg
	assert.Equal(t, []string{"home", "home"}, labels(p))
}
