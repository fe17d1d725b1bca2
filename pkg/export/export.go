package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/kilianp07/dayplan/core/plan"
	"github.com/kilianp07/dayplan/core/population"
)

// Trip is one row of the exported trip table. Times are minutes since the
// start of the day.
type Trip struct {
	HID      string  `json:"hid"`
	PID      string  `json:"pid"`
	Seq      int     `json:"seq"`
	Mode     string  `json:"mode"`
	Purpose  string  `json:"purp"`
	OZone    string  `json:"ozone"`
	DZone    string  `json:"dzone"`
	Start    int     `json:"tst"`
	End      int     `json:"tet"`
	Distance float64 `json:"distance"`
	Freq     float64 `json:"freq"`
}

// Trips flattens every plan into trip rows, one per leg after collapsing
// transit access and egress stages. Rows are ordered by household, person
// and leg sequence.
func Trips(pop *population.Population) []Trip {
	var rows []Trip

	hids := make([]string, 0, len(pop.Households))
	for hid := range pop.Households {
		hids = append(hids, hid)
	}
	sort.Strings(hids)

	for _, hid := range hids {
		hh := pop.Households[hid]
		pids := make([]string, 0, len(hh.People))
		for pid := range hh.People {
			pids = append(pids, pid)
		}
		sort.Strings(pids)

		for _, pid := range pids {
			person := hh.People[pid]
			freq, _ := person.TripFreq()
			for i, leg := range person.Plan.Trips() {
				rows = append(rows, Trip{
					HID:      hid,
					PID:      pid,
					Seq:      i + 1,
					Mode:     leg.Mode,
					Purpose:  leg.Purpose,
					OZone:    leg.StartLocation.Max(),
					DZone:    leg.EndLocation.Max(),
					Start:    minutes(leg.Start()),
					End:      minutes(leg.End()),
					Distance: leg.Distance(),
					Freq:     freq,
				})
			}
		}
	}
	return rows
}

// WriteJSON writes the population's trips to w in JSON format.
func WriteJSON(w io.Writer, pop *population.Population) error {
	enc := json.NewEncoder(w)
	return enc.Encode(Trips(pop))
}

// WriteCSV writes the population's trips to w in CSV format with travel
// diary headers.
func WriteCSV(w io.Writer, pop *population.Population) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hid", "pid", "seq", "mode", "purp", "ozone", "dzone", "tst", "tet", "distance", "freq"}); err != nil {
		return err
	}
	for _, trip := range Trips(pop) {
		rec := []string{
			trip.HID,
			trip.PID,
			strconv.Itoa(trip.Seq),
			trip.Mode,
			trip.Purpose,
			trip.OZone,
			trip.DZone,
			strconv.Itoa(trip.Start),
			strconv.Itoa(trip.End),
			strconv.FormatFloat(trip.Distance, 'f', -1, 64),
			strconv.FormatFloat(trip.Freq, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func minutes(t time.Time) int {
	return int(t.Sub(plan.StartOfDay).Minutes())
}
