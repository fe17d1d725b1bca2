package matsim

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/kilianp07/dayplan/core/plan"
	"github.com/kilianp07/dayplan/core/population"
)

const doctype = `<!DOCTYPE population SYSTEM "http://www.matsim.org/files/dtd/population_v6.dtd">`

type xmlAttribute struct {
	XMLName xml.Name `xml:"attribute"`
	Name    string   `xml:"name,attr"`
	Class   string   `xml:"class,attr"`
	Value   string   `xml:",chardata"`
}

type xmlAttributes struct {
	XMLName    xml.Name       `xml:"attributes"`
	Attributes []xmlAttribute `xml:"attribute"`
}

type xmlActivity struct {
	XMLName xml.Name `xml:"activity"`
	Type    string   `xml:"type,attr"`
	X       *float64 `xml:"x,attr,omitempty"`
	Y       *float64 `xml:"y,attr,omitempty"`
	Link    string   `xml:"link,attr,omitempty"`
	EndTime string   `xml:"end_time,attr,omitempty"`
}

type xmlRoute struct {
	XMLName   xml.Name `xml:"route"`
	Type      string   `xml:"type,attr,omitempty"`
	StartLink string   `xml:"start_link,attr,omitempty"`
	EndLink   string   `xml:"end_link,attr,omitempty"`
	Distance  *float64 `xml:"distance,attr,omitempty"`
	Links     string   `xml:",chardata"`
}

type xmlLeg struct {
	XMLName  xml.Name  `xml:"leg"`
	Mode     string    `xml:"mode,attr"`
	DepTime  string    `xml:"dep_time,attr,omitempty"`
	TravTime string    `xml:"trav_time,attr,omitempty"`
	Route    *xmlRoute `xml:"route,omitempty"`
}

// WriteFile writes the population to path as MATSim population v6 XML.
func WriteFile(path string, pop *population.Population) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plans file: %w", err)
	}
	if err := Write(f, pop); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write emits MATSim population v6 XML. Households and persons are written in
// identifier order so output is stable across runs.
func Write(w io.Writer, pop *population.Population) error {
	if _, err := io.WriteString(w, xml.Header+doctype+"\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")

	popStart := xml.StartElement{Name: xml.Name{Local: "population"}}
	if err := enc.EncodeToken(popStart); err != nil {
		return err
	}

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
			if err := encodePerson(enc, hid, hh.People[pid]); err != nil {
				return fmt.Errorf("person %s: %w", pid, err)
			}
		}
	}

	if err := enc.EncodeToken(popStart.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodePerson(enc *xml.Encoder, hid string, person *population.Person) error {
	personStart := xml.StartElement{
		Name: xml.Name{Local: "person"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "id"}, Value: person.PID}},
	}
	if err := enc.EncodeToken(personStart); err != nil {
		return err
	}

	attrs := xmlAttributes{Attributes: []xmlAttribute{
		{Name: "hid", Class: "java.lang.String", Value: hid},
	}}
	names := make([]string, 0, len(person.Attributes))
	for name := range person.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attrs.Attributes = append(attrs.Attributes, xmlAttribute{
			Name: name, Class: "java.lang.String", Value: person.Attributes[name],
		})
	}
	if err := enc.Encode(attrs); err != nil {
		return err
	}

	planStart := xml.StartElement{
		Name: xml.Name{Local: "plan"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "selected"}, Value: "yes"}},
	}
	if err := enc.EncodeToken(planStart); err != nil {
		return err
	}

	day := person.Plan.Day
	for i, c := range day {
		switch v := c.(type) {
		case *plan.Activity:
			act := xmlActivity{Type: v.Act, Link: v.Location.Link}
			if v.Location.Loc != nil {
				x, y := v.Location.Loc.X, v.Location.Loc.Y
				act.X, act.Y = &x, &y
			}
			if i != len(day)-1 {
				act.EndTime = FormatClock(v.End())
			}
			if err := enc.Encode(act); err != nil {
				return err
			}
		case *plan.Leg:
			leg := xmlLeg{
				Mode:     v.Mode,
				DepTime:  FormatClock(v.Start()),
				TravTime: FormatDelta(v.Duration()),
			}
			if v.Route.Exists() || v.Dist > 0 {
				r := &xmlRoute{
					StartLink: v.StartLocation.Link,
					EndLink:   v.EndLocation.Link,
				}
				if v.Dist > 0 {
					d := v.Dist
					r.Distance = &d
				}
				if len(v.Route.Network) > 0 {
					r.Type = "links"
					r.Links = strings.Join(v.Route.Network, " ")
				}
				leg.Route = r
			}
			if err := enc.Encode(leg); err != nil {
				return err
			}
		}
	}

	if err := enc.EncodeToken(planStart.End()); err != nil {
		return err
	}
	return enc.EncodeToken(personStart.End())
}

// FormatClock renders a plan time as hh:mm:ss since the start of the day.
// Times past midnight keep counting, eg 25:30:00.
func FormatClock(t time.Time) string {
	return FormatDelta(t.Sub(plan.StartOfDay))
}

// FormatDelta renders a duration as hh:mm:ss.
func FormatDelta(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ParseClock reads an hh:mm:ss or hh:mm clock time relative to the start of
// the day. Hours beyond 23 roll past midnight.
func ParseClock(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad clock time %q", s)
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(parts[0]+" "+parts[1], "%d %d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("bad clock time %q", s)
	}
	if len(parts) == 3 {
		if _, err := fmt.Sscanf(parts[2], "%d", &sec); err != nil {
			return time.Time{}, fmt.Errorf("bad clock time %q", s)
		}
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
	return plan.StartOfDay.Add(d), nil
}

// ParseDelta reads an hh:mm:ss travel time as a duration.
func ParseDelta(s string) (time.Duration, error) {
	t, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return t.Sub(plan.StartOfDay), nil
}
