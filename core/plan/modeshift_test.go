package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleTourPlan() *Plan {
	p := New()
	mustAdd(p,
		tact(1, "home", "a", 0, 60),
		tleg(1, "car", "a", "b", 60, 90),
		tact(2, "shop", "b", 90, 500),
		tleg(2, "car", "b", "a", 500, 530),
		tact(3, "home", "a", 530, 24*60),
	)
	return p
}

func twoTourPlan() *Plan {
	p := New()
	mustAdd(p,
		tact(1, "home", "a", 0, 60),
		tleg(1, "car", "a", "b", 60, 90),
		tact(2, "shop", "b", 90, 500),
		tleg(2, "car", "b", "a", 500, 530),
		tact(3, "home", "a", 530, 860),
		tleg(3, "car", "a", "c", 860, 900),
		tact(4, "work", "c", 900, 1000),
		tleg(4, "car", "c", "a", 1000, 1030),
		tact(5, "home", "a", 1030, 24*60),
	)
	return p
}

func TestModeShiftSingleTour(t *testing.T) {
	p := singleTourPlan()
	require.NoError(t, p.ModeShift(1, "pt", nil, false))
	assert.Equal(t, []string{"pt", "pt"}, modes(p))
}

func TestModeShiftTwoToursFirstLeg(t *testing.T) {
	p := twoTourPlan()
	require.NoError(t, p.ModeShift(1, "pt", nil, false))
	assert.Equal(t, []string{"pt", "pt", "car", "car"}, modes(p))
}

func TestModeShiftTwoToursSecondTour(t *testing.T) {
	p := twoTourPlan()
	require.NoError(t, p.ModeShift(5, "pt", nil, false))
	assert.Equal(t, []string{"car", "car", "pt", "pt"}, modes(p))
}

func TestModeShiftNotALeg(t *testing.T) {
	p := singleTourPlan()
	err := p.ModeShift(0, "pt", nil, false)
	require.ErrorIs(t, err, ErrNotLeg)
}

func TestModeShiftLegOutsideAnyTour(t *testing.T) {
	p := New()
	mustAdd(p,
		tact(1, "home", "a", 0, 600),
		tleg(1, "walk", "a", "a", 600, 660),
		tact(2, "home", "a", 660, 860),
		tleg(2, "car", "a", "b", 860, 900),
		tact(3, "shop", "b", 900, 1000),
		tleg(3, "car", "b", "a", 1000, 1030),
		tact(4, "home", "a", 1030, 24*60),
	)

	// the home-to-home loop belongs to no tour but still retargets
	require.NoError(t, p.ModeShift(1, "pt", nil, false))
	assert.Equal(t, []string{"pt", "car", "car"}, modes(p))
}

func TestGetLegTour(t *testing.T) {
	p := twoTourPlan()
	tour, err := p.GetLegTour(3)
	require.NoError(t, err)
	require.Len(t, tour, 1)
	assert.Equal(t, "shop", tour[0].Act)
}

func TestModeShiftUpdateDuration(t *testing.T) {
	p := singleTourPlan()
	require.NoError(t, p.ModeShift(1, "walk", nil, true))

	assert.Equal(t, []string{"walk", "walk"}, modes(p))
	for _, leg := range p.Legs() {
		// car at 37 km/h to walk at 4 km/h stretches each leg
		assert.Greater(t, int64(leg.Duration()), int64(0))
	}
	// home durations shrink so the day still sums to 24 hours
	assert.True(t, p.Day[len(p.Day)-1].End().Equal(EndOfDay))
	assert.True(t, p.ValidTimes())
}
