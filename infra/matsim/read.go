package matsim

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clbanning/mxj/v2"

	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/plan"
	"github.com/kilianp07/dayplan/core/population"
)

// ReadOptions controls post-processing of parsed plans.
type ReadOptions struct {
	// SimplifyPTTrips collapses transit access/egress chains into single
	// pt legs.
	SimplifyPTTrips bool
	// Crop repairs plans that run past the end of the day.
	Crop bool
	// Autocomplete fills leg locations from neighbouring activities.
	Autocomplete bool
}

// Parser reads MATSim population v6 XML into populations.
type Parser struct {
	opts ReadOptions
	log  logger.Logger
}

// NewParser returns a Parser with the given post-processing options.
func NewParser(opts ReadOptions) *Parser {
	return &Parser{opts: opts}
}

// SetLogger attaches a logger used for per-person diagnostics.
func (p *Parser) SetLogger(l logger.Logger) { p.log = l }

func (p *Parser) logger() logger.Logger {
	if p.log == nil {
		return logger.Nop{}
	}
	return p.log
}

// ReadFile parses the MATSim plans file at path.
func (p *Parser) ReadFile(path string) (*population.Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plans file: %w", err)
	}
	defer f.Close()
	return p.Read(f)
}

// Read parses MATSim population XML from src.
func (p *Parser) Read(src io.Reader) (*population.Population, error) {
	m, err := mxj.NewMapXmlReader(src)
	if err != nil {
		return nil, fmt.Errorf("parse plans xml: %w", err)
	}

	root, ok := m["population"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("no population element")
	}

	pop := population.New()
	if p.log != nil {
		pop.SetLogger(p.log)
	}

	for _, node := range asSlice(root["person"]) {
		personMap, ok := node.(map[string]interface{})
		if !ok {
			continue
		}
		if err := p.parsePerson(pop, personMap); err != nil {
			return nil, err
		}
	}
	return pop, nil
}

func (p *Parser) parsePerson(pop *population.Population, personMap map[string]interface{}) error {
	pid := attr(personMap, "id")
	attributes, hid := parseAttributes(personMap["attributes"])
	if hid == "" {
		hid = pid
	}

	planMap := selectedPlan(personMap["plan"])
	if planMap == nil {
		return fmt.Errorf("person %s has no plan", pid)
	}

	person := population.NewPerson(pid, plan.Location{})
	person.Attributes = attributes
	if err := p.parsePlan(person.Plan, planMap); err != nil {
		return fmt.Errorf("person %s: %w", pid, err)
	}

	if p.opts.SimplifyPTTrips {
		person.Plan.SimplifyPTTrips()
	}
	person.Plan.SetLegPurposes()
	if p.opts.Crop {
		person.Plan.Crop()
	}
	if p.opts.Autocomplete {
		person.Plan.Autocomplete()
	}
	if !person.Plan.IsValid() {
		p.logger().Warnf("person %s has an invalid plan after read", pid)
	}

	person.HomeLocation = person.Plan.Home()
	pop.AddPerson(hid, person)
	return nil
}

// parsePlan rebuilds the day from the plan's activity and leg elements.
// MATSim plans alternate activity, leg, activity so element order is
// recoverable by interleaving the two lists.
func (p *Parser) parsePlan(dst *plan.Plan, planMap map[string]interface{}) error {
	acts := asSlice(planMap["activity"])
	if acts == nil {
		acts = asSlice(planMap["act"])
	}
	legs := asSlice(planMap["leg"])
	if len(acts) == 0 {
		return fmt.Errorf("plan has no activities")
	}
	if len(legs) != len(acts)-1 {
		return fmt.Errorf("plan has %d activities but %d legs", len(acts), len(legs))
	}

	arrival := plan.StartOfDay
	for i, node := range acts {
		actMap, ok := node.(map[string]interface{})
		if !ok {
			return fmt.Errorf("malformed activity element")
		}
		act, departure, err := parseActivity(actMap, i, arrival)
		if err != nil {
			return err
		}
		if err := dst.Add(act); err != nil {
			return err
		}
		if i >= len(legs) {
			break
		}
		legMap, ok := legs[i].(map[string]interface{})
		if !ok {
			return fmt.Errorf("malformed leg element")
		}
		leg, err := parseLeg(legMap, i, departure)
		if err != nil {
			return err
		}
		if err := dst.Add(leg); err != nil {
			return err
		}
		arrival = leg.End()
	}
	return nil
}

func parseActivity(actMap map[string]interface{}, seq int, arrival time.Time) (*plan.Activity, time.Time, error) {
	actType := attr(actMap, "type")

	loc := plan.Location{Link: attr(actMap, "link")}
	xs, ys := attr(actMap, "x"), attr(actMap, "y")
	if xs != "" && ys != "" {
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return nil, arrival, fmt.Errorf("bad activity coordinates %q,%q", xs, ys)
		}
		loc.Loc = &plan.Point{X: x, Y: y}
	}

	departure := plan.EndOfDay
	if end := attr(actMap, "end_time"); end != "" {
		var err error
		departure, err = ParseClock(end)
		if err != nil {
			return nil, arrival, err
		}
	} else if plan.IsInterchange(actType) {
		departure = arrival
	}

	return &plan.Activity{
		TimeSpan: plan.TimeSpan{StartTime: arrival, EndTime: departure},
		Seq:      seq,
		Act:      actType,
		Location: loc,
	}, departure, nil
}

func parseLeg(legMap map[string]interface{}, seq int, departure time.Time) (*plan.Leg, error) {
	arrival := departure
	if tt := attr(legMap, "trav_time"); tt != "" {
		dur, err := ParseDelta(tt)
		if err != nil {
			return nil, err
		}
		arrival = departure.Add(dur)
	}

	leg := &plan.Leg{
		TimeSpan: plan.TimeSpan{StartTime: departure, EndTime: arrival},
		Seq:      seq,
		Mode:     attr(legMap, "mode"),
	}

	if routeMap, ok := legMap["route"].(map[string]interface{}); ok {
		leg.StartLocation = plan.Location{Link: attr(routeMap, "start_link")}
		leg.EndLocation = plan.Location{Link: attr(routeMap, "end_link")}
		if ds := attr(routeMap, "distance"); ds != "" {
			d, err := strconv.ParseFloat(ds, 64)
			if err != nil {
				return nil, fmt.Errorf("bad route distance %q", ds)
			}
			leg.Dist = d
		}
		if text, ok := routeMap["#text"].(string); ok && attr(routeMap, "type") == "links" {
			leg.Route.Network = strings.Fields(text)
		}
	}
	return leg, nil
}

// selectedPlan picks the plan flagged selected="yes", falling back to the
// first one.
func selectedPlan(node interface{}) map[string]interface{} {
	plans := asSlice(node)
	for _, p := range plans {
		if m, ok := p.(map[string]interface{}); ok && attr(m, "selected") == "yes" {
			return m
		}
	}
	for _, p := range plans {
		if m, ok := p.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func parseAttributes(node interface{}) (map[string]string, string) {
	out := make(map[string]string)
	hid := ""
	attrsMap, ok := node.(map[string]interface{})
	if !ok {
		return out, hid
	}
	for _, a := range asSlice(attrsMap["attribute"]) {
		m, ok := a.(map[string]interface{})
		if !ok {
			continue
		}
		name := attr(m, "name")
		value, _ := m["#text"].(string)
		if name == "hid" {
			hid = value
			continue
		}
		if name != "" {
			out[name] = value
		}
	}
	return out, hid
}

// asSlice normalises mxj values, which decode repeated elements as slices
// and single elements as plain maps.
func asSlice(node interface{}) []interface{} {
	switch v := node.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		return []interface{}{v}
	default:
		return nil
	}
}

func attr(m map[string]interface{}, name string) string {
	if s, ok := m["-"+name].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
