package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dayplan/core/plan"
	"github.com/kilianp07/dayplan/core/population"
)

func newTestPopulation(t *testing.T) *population.Population {
	t.Helper()
	pop := population.New()
	person := population.NewPerson("p1", plan.Location{Area: "A"})
	person.Freq = 2

	add := func(c plan.Component) {
		require.NoError(t, person.Plan.Add(c))
	}
	add(&plan.Activity{
		TimeSpan: plan.TimeSpan{StartTime: plan.StartOfDay, EndTime: plan.Minutes(480)},
		Seq:      0, Act: "home", Location: plan.Location{Area: "A"},
	})
	add(&plan.Leg{
		TimeSpan: plan.TimeSpan{StartTime: plan.Minutes(480), EndTime: plan.Minutes(510)},
		Seq:      0, Mode: "car", StartLocation: plan.Location{Area: "A"},
		EndLocation: plan.Location{Area: "B"}, Dist: 12000,
	})
	add(&plan.Activity{
		TimeSpan: plan.TimeSpan{StartTime: plan.Minutes(510), EndTime: plan.EndOfDay},
		Seq:      1, Act: "work", Location: plan.Location{Area: "B"},
	})
	pop.AddPerson("h1", person)
	return pop
}

func TestTrips(t *testing.T) {
	rows := Trips(newTestPopulation(t))
	require.Len(t, rows, 1)

	trip := rows[0]
	assert.Equal(t, "h1", trip.HID)
	assert.Equal(t, "p1", trip.PID)
	assert.Equal(t, 1, trip.Seq)
	assert.Equal(t, "car", trip.Mode)
	assert.Equal(t, "work", trip.Purpose)
	assert.Equal(t, "A", trip.OZone)
	assert.Equal(t, "B", trip.DZone)
	assert.Equal(t, 480, trip.Start)
	assert.Equal(t, 510, trip.End)
	assert.Equal(t, 12000.0, trip.Distance)
	assert.Equal(t, 2.0, trip.Freq)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, newTestPopulation(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "hid,pid,seq,mode,purp,ozone,dzone,tst,tet,distance,freq", lines[0])
	assert.Equal(t, "h1,p1,1,car,work,A,B,480,510,12000,2", lines[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, newTestPopulation(t)))

	var rows []Trip
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "car", rows[0].Mode)
}
