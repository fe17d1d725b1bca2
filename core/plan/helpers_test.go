package plan

// test fixture helpers; times are minutes from start of day

func tact(seq int, label, area string, start, end int) *Activity {
	return &Activity{
		TimeSpan: TimeSpan{StartTime: Minutes(start), EndTime: Minutes(end)},
		Seq:      seq,
		Act:      label,
		Location: Location{Area: area},
	}
}

func tleg(seq int, mode, from, to string, start, end int) *Leg {
	return &Leg{
		TimeSpan:      TimeSpan{StartTime: Minutes(start), EndTime: Minutes(end)},
		Seq:           seq,
		Mode:          mode,
		StartLocation: Location{Area: from},
		EndLocation:   Location{Area: to},
	}
}

func mustAdd(p *Plan, components ...Component) {
	for _, c := range components {
		if err := p.Add(c); err != nil {
			panic(err)
		}
	}
}

func labels(p *Plan) []string {
	var out []string
	for _, a := range p.Activities() {
		out = append(out, a.Act)
	}
	return out
}

func modes(p *Plan) []string {
	var out []string
	for _, l := range p.Legs() {
		out = append(out, l.Mode)
	}
	return out
}
