package diary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/plan"
	"github.com/kilianp07/dayplan/core/population"
)

// TripRecord is one row of a travel diary table.
type TripRecord struct {
	HID      string
	PID      string
	Seq      int
	Mode     string
	Purpose  string
	OZone    string
	DZone    string
	HZone    string
	Start    time.Time
	End      time.Time
	Distance float64
	Freq     float64
}

// Reader builds populations from tabular travel diaries.
type Reader struct {
	// TourBased controls how activity types are assigned. When true the
	// diary rows carry trip purposes and activity types are inferred from
	// tour structure. When false each row's purpose is taken directly as
	// the destination activity type and plans are assumed home anchored.
	TourBased bool

	log logger.Logger
}

// NewReader returns a Reader with tour based inference enabled.
func NewReader() *Reader {
	return &Reader{TourBased: true}
}

// SetLogger attaches a logger used for per-person diagnostics.
func (r *Reader) SetLogger(l logger.Logger) { r.log = l }

func (r *Reader) logger() logger.Logger {
	if r.log == nil {
		return logger.Nop{}
	}
	return r.log
}

// LoadFile reads a CSV travel diary from path and builds a population.
func (r *Reader) LoadFile(path string) (*population.Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open diary: %w", err)
	}
	defer f.Close()
	return r.Load(f)
}

// Load reads a CSV travel diary and builds a population.
func (r *Reader) Load(src io.Reader) (*population.Population, error) {
	trips, err := ReadTrips(src)
	if err != nil {
		return nil, err
	}
	return r.Build(trips)
}

// ReadTrips parses the CSV rows of a travel diary. The header row names the
// columns; hid, pid, mode, purp, ozone, dzone, tst and tet are required.
func ReadTrips(src io.Reader) ([]TripRecord, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read diary header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"hid", "pid", "mode", "purp", "ozone", "dzone", "tst", "tet"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("diary is missing column %q", required)
		}
	}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var trips []TripRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read diary row: %w", err)
		}
		rec := TripRecord{
			HID:     field(row, "hid"),
			PID:     field(row, "pid"),
			Mode:    strings.ToLower(field(row, "mode")),
			Purpose: strings.ToLower(field(row, "purp")),
			OZone:   field(row, "ozone"),
			DZone:   field(row, "dzone"),
			HZone:   field(row, "hzone"),
			Freq:    1,
		}
		if s := field(row, "seq"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("diary line %d: bad seq %q", line, s)
			}
			rec.Seq = n
		}
		if rec.Start, err = ParseTripTime(field(row, "tst")); err != nil {
			return nil, fmt.Errorf("diary line %d: %w", line, err)
		}
		if rec.End, err = ParseTripTime(field(row, "tet")); err != nil {
			return nil, fmt.Errorf("diary line %d: %w", line, err)
		}
		if s := field(row, "freq"); s != "" {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("diary line %d: bad freq %q", line, s)
			}
			rec.Freq = f
		}
		if s := field(row, "distance"); s != "" {
			d, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("diary line %d: bad distance %q", line, s)
			}
			rec.Distance = d
		}
		trips = append(trips, rec)
	}
	return trips, nil
}

// ParseTripTime accepts minutes since the start of the day or a clock time in
// hh:mm or hh:mm:ss form. Hours beyond 23 roll past midnight.
func ParseTripTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	if !strings.Contains(s, ":") {
		mins, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad time %q", s)
		}
		return plan.Minutes(mins), nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad time %q", s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad time %q", s)
		}
		nums[i] = n
	}
	d := time.Duration(nums[0])*time.Hour + time.Duration(nums[1])*time.Minute
	if len(nums) == 3 {
		d += time.Duration(nums[2]) * time.Second
	}
	return plan.StartOfDay.Add(d), nil
}

// Build assembles a population from parsed trip records. Rows are grouped by
// household and person, preserving household file order, and sorted by seq
// within each person.
func (r *Reader) Build(trips []TripRecord) (*population.Population, error) {
	pop := population.New()
	if r.log != nil {
		pop.SetLogger(r.log)
	}

	type key struct{ hid, pid string }
	grouped := make(map[key][]TripRecord)
	var order []key
	for _, t := range trips {
		k := key{t.HID, t.PID}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], t)
	}

	for _, k := range order {
		personTrips := grouped[k]
		sort.SliceStable(personTrips, func(i, j int) bool {
			return personTrips[i].Seq < personTrips[j].Seq
		})

		home := plan.Location{Area: personTrips[0].HZone}
		person := population.NewPerson(k.pid, home)
		person.Freq = personTrips[0].Freq

		if err := r.buildPlan(person, personTrips); err != nil {
			return nil, fmt.Errorf("person %s: %w", k.pid, err)
		}
		pop.AddPerson(k.hid, person)
	}
	return pop, nil
}

func (r *Reader) buildPlan(person *population.Person, trips []TripRecord) error {
	firstAct := ""
	if !r.TourBased {
		firstAct = "home"
	}
	if err := person.Plan.Add(&plan.Activity{
		TimeSpan: plan.TimeSpan{StartTime: plan.StartOfDay},
		Seq:      0,
		Act:      firstAct,
		Location: plan.Location{Area: trips[0].OZone},
	}); err != nil {
		return err
	}

	for i, trip := range trips {
		leg := &plan.Leg{
			TimeSpan:      plan.TimeSpan{StartTime: trip.Start, EndTime: trip.End},
			Seq:           i,
			Mode:          trip.Mode,
			Purpose:       trip.Purpose,
			StartLocation: plan.Location{Area: trip.OZone},
			EndLocation:   plan.Location{Area: trip.DZone},
			Dist:          trip.Distance,
			Freq:          trip.Freq,
		}
		if err := person.Plan.Add(leg); err != nil {
			return err
		}

		act := ""
		if !r.TourBased {
			act = trip.Purpose
		}
		if err := person.Plan.Add(&plan.Activity{
			TimeSpan: plan.TimeSpan{StartTime: trip.End},
			Seq:      i + 1,
			Act:      act,
			Location: plan.Location{Area: trip.DZone},
		}); err != nil {
			return err
		}
	}

	person.Plan.FinaliseActivityEndTimes()
	if r.TourBased {
		person.Plan.InferActivitiesFromTourPurpose()
		person.Plan.SetLegPurposes()
	}
	if !person.Plan.IsValid() {
		r.logger().Warnf("person %s has an invalid diary plan", person.PID)
	}
	return nil
}
