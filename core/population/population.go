package population

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/plan"
)

// Household groups the persons living at one home location.
type Household struct {
	HID    string
	Freq   float64
	People map[string]*Person
}

// NewHousehold returns an empty household.
func NewHousehold(hid string) *Household {
	return &Household{HID: hid, People: make(map[string]*Person)}
}

// Add registers a person with the household.
func (h *Household) Add(p *Person) {
	h.People[p.PID] = p
}

// Population holds the synthetic persons under study, grouped by household.
// Plans are exclusively owned per person, so batch operations are safe to
// parallelise at person granularity only.
type Population struct {
	Households map[string]*Household

	log  logger.Logger
	sink metrics.RepairSink
}

// New returns an empty population with a no-op logger and sink.
func New() *Population {
	return &Population{
		Households: make(map[string]*Household),
		log:        logger.Nop{},
		sink:       metrics.NopSink{},
	}
}

// SetLogger injects a diagnostics logger, propagated to plans as persons are
// added.
func (p *Population) SetLogger(log logger.Logger) {
	if log == nil {
		log = logger.Nop{}
	}
	p.log = log
}

// SetMetricsSink injects the sink receiving edit events, propagated to every
// person already held and to persons added later.
func (p *Population) SetMetricsSink(sink metrics.RepairSink) {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	p.sink = sink
	for _, hh := range p.Households {
		for _, person := range hh.People {
			person.SetMetricsSink(sink)
		}
	}
}

// AddPerson registers a person under the given household, creating the
// household as needed.
func (p *Population) AddPerson(hid string, person *Person) {
	hh, ok := p.Households[hid]
	if !ok {
		hh = NewHousehold(hid)
		p.Households[hid] = hh
	}
	person.SetLogger(p.log)
	person.SetMetricsSink(p.sink)
	hh.Add(person)
}

// Person returns the person with the given pid, or false.
func (p *Population) Person(pid string) (*Person, bool) {
	for _, hh := range p.Households {
		if person, ok := hh.People[pid]; ok {
			return person, true
		}
	}
	return nil, false
}

// People returns all persons sorted by pid for deterministic iteration.
func (p *Population) People() []*Person {
	var people []*Person
	for _, hh := range p.Households {
		for _, person := range hh.People {
			people = append(people, person)
		}
	}
	sort.Slice(people, func(i, j int) bool { return people[i].PID < people[j].PID })
	return people
}

// Len returns the number of persons.
func (p *Population) Len() int {
	n := 0
	for _, hh := range p.Households {
		n += len(hh.People)
	}
	return n
}

// Stats summarises the population.
type Stats struct {
	Households int
	Persons    int
	Activities int
	Legs       int
	ValidPlans int
	// MeanTripFreq is the mean person trip frequency over persons that
	// carry one.
	MeanTripFreq float64
}

// Stats walks every plan once and aggregates counts.
func (p *Population) Stats() Stats {
	s := Stats{Households: len(p.Households)}
	var freqs []float64
	for _, person := range p.People() {
		s.Persons++
		s.Activities += len(person.Activities())
		s.Legs += len(person.Legs())
		if person.Plan.IsValid() {
			s.ValidPlans++
		}
		if f, ok := person.TripFreq(); ok {
			freqs = append(freqs, f)
		}
	}
	if len(freqs) > 0 {
		s.MeanTripFreq = stat.Mean(freqs, nil)
	}
	return s
}

// FixPlans repairs every plan in place and reports repair events to the
// sink. Plans that remain invalid are logged and counted, never fatal; the
// caller decides whether to drop them.
func (p *Population) FixPlans(cfg plan.FixConfig, sink metrics.RepairSink) {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	for _, person := range p.People() {
		if person.Plan.Length() == 0 {
			continue
		}
		if person.Plan.IsValid() {
			continue
		}
		person.Plan.Fix(cfg)
		sink.PlanRepaired()
		if !person.Plan.IsValid() {
			sink.PlanInvalid()
			p.log.Warnf("plan for person %s still invalid after repair", person.PID)
		}
	}
}

// Reindex prefixes every household and person id, keeping ids unique when
// merging populations. All clashes are detected up front so a failed reindex
// leaves the population untouched.
func (p *Population) Reindex(prefix string) error {
	for hid, hh := range p.Households {
		newHID := prefix + hid
		if _, clash := p.Households[newHID]; clash && newHID != hid {
			return fmt.Errorf("reindex: household id %s already exists", newHID)
		}
		for pid := range hh.People {
			newPID := prefix + pid
			if _, clash := hh.People[newPID]; clash && newPID != pid {
				return fmt.Errorf("reindex: person id %s already exists", newPID)
			}
		}
	}
	households := make(map[string]*Household, len(p.Households))
	for hid, hh := range p.Households {
		people := make(map[string]*Person, len(hh.People))
		for pid, person := range hh.People {
			person.PID = prefix + pid
			people[person.PID] = person
		}
		hh.HID = prefix + hid
		hh.People = people
		households[hh.HID] = hh
	}
	p.Households = households
	return nil
}

// Anonymise replaces every person id with a generated uuid.
func (p *Population) Anonymise() {
	for _, hh := range p.Households {
		people := make(map[string]*Person, len(hh.People))
		for _, person := range hh.People {
			person.PID = uuid.NewString()
			people[person.PID] = person
		}
		hh.People = people
	}
}
