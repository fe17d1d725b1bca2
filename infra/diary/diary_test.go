package diary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dayplan/core/plan"
)

const commuteCSV = `pid,hid,seq,hzone,ozone,dzone,purp,mode,tst,tet,freq
census_0,census_0,1,Harrow,Harrow,Camden,work,pt,444,473,1000
census_0,census_0,2,Harrow,Camden,Harrow,work,pt,890,919,1000
census_1,census_1,1,Islington,Islington,Hackney,shop,walk,600,630,800
census_1,census_1,2,Islington,Hackney,Islington,shop,walk,680,710,800
`

func TestReadTrips(t *testing.T) {
	trips, err := ReadTrips(strings.NewReader(commuteCSV))
	require.NoError(t, err)
	require.Len(t, trips, 4)

	first := trips[0]
	assert.Equal(t, "census_0", first.PID)
	assert.Equal(t, "census_0", first.HID)
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, "pt", first.Mode)
	assert.Equal(t, "work", first.Purpose)
	assert.Equal(t, "Harrow", first.OZone)
	assert.Equal(t, "Camden", first.DZone)
	assert.Equal(t, plan.Minutes(444), first.Start)
	assert.Equal(t, plan.Minutes(473), first.End)
	assert.Equal(t, 1000.0, first.Freq)
}

func TestReadTripsMissingColumn(t *testing.T) {
	_, err := ReadTrips(strings.NewReader("pid,hid,mode\np1,h1,car\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purp")
}

func TestParseTripTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"444", 444},
		{"07:24", 444},
		{"07:24:00", 444},
		{"25:30", 25*60 + 30},
	}
	for _, c := range cases {
		got, err := ParseTripTime(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got != plan.Minutes(c.want) {
			t.Errorf("parse %q = %v, want %v", c.in, got, plan.Minutes(c.want))
		}
	}
	if _, err := ParseTripTime("seven"); err == nil {
		t.Errorf("expected error for bad time")
	}
}

func TestBuildTourBased(t *testing.T) {
	r := NewReader()
	pop, err := r.Load(strings.NewReader(commuteCSV))
	require.NoError(t, err)
	require.Equal(t, 2, pop.Len())

	person, ok := pop.Person("census_0")
	require.True(t, ok)
	require.True(t, person.Plan.IsValid())

	acts := person.Plan.ActivityClasses()
	assert.True(t, acts["home"] && acts["work"])
	assert.Len(t, acts, 2)

	labels := make([]string, 0, 3)
	for _, a := range person.Plan.Activities() {
		labels = append(labels, a.Act)
	}
	assert.Equal(t, []string{"home", "work", "home"}, labels)

	first := person.Plan.Activities()[0]
	assert.Equal(t, plan.StartOfDay, first.Start())
	assert.Equal(t, plan.Minutes(444), first.End())
	last := person.Plan.Activities()[2]
	assert.Equal(t, plan.EndOfDay, last.End())

	for _, l := range person.Plan.Legs() {
		assert.Equal(t, "work", l.Purpose)
	}
}

func TestBuildTripBased(t *testing.T) {
	r := NewReader()
	r.TourBased = false
	pop, err := r.Load(strings.NewReader(commuteCSV))
	require.NoError(t, err)

	person, ok := pop.Person("census_1")
	require.True(t, ok)
	require.True(t, person.Plan.IsValid())

	labels := make([]string, 0, 3)
	for _, a := range person.Plan.Activities() {
		labels = append(labels, a.Act)
	}
	assert.Equal(t, []string{"home", "shop", "shop"}, labels)
}

func TestBuildSortsBySeq(t *testing.T) {
	shuffled := `pid,hid,seq,hzone,ozone,dzone,purp,mode,tst,tet,freq
p1,h1,2,A,B,A,work,pt,890,919,1
p1,h1,1,A,A,B,work,pt,444,473,1
`
	r := NewReader()
	pop, err := r.Load(strings.NewReader(shuffled))
	require.NoError(t, err)
	person, ok := pop.Person("p1")
	require.True(t, ok)
	require.True(t, person.Plan.IsValid())
	assert.Equal(t, plan.Minutes(444), person.Plan.Legs()[0].Start())
}
