package types

// Slot is one course placed in a term. Alternative slots come from a
// sequencing cell such as "MATH 100 OR MATH 114" and render as a choice;
// slots of the same cell share a Group number, unique within the term.
type Slot struct {
	Course      Course `json:"course"`
	Alternative bool   `json:"alternative,omitempty"`
	Group       int    `json:"group,omitempty"`
}

// Term is a named group of courses taken concurrently.
type Term struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Plan is one named sequencing of terms, e.g. "Traditional" or "Co-op Plan 1".
type Plan struct {
	Name  string `json:"name"`
	Terms []Term `json:"terms"`
}

// Clone deep-copies the plan, including every course's requisite lists.
func (p Plan) Clone() Plan {
	out := Plan{Name: p.Name, Terms: make([]Term, len(p.Terms))}
	for i, t := range p.Terms {
		slots := make([]Slot, len(t.Slots))
		for j, s := range t.Slots {
			slots[j] = Slot{Course: s.Course.Clone(), Alternative: s.Alternative, Group: s.Group}
		}
		out.Terms[i] = Term{Name: t.Name, Slots: slots}
	}
	return out
}

// Courses returns every course in the plan in term order.
func (p Plan) Courses() []Course {
	var out []Course
	for _, t := range p.Terms {
		for _, s := range t.Slots {
			out = append(out, s.Course)
		}
	}
	return out
}

// Category is one legend entry.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Program is everything the renderer needs: the department, the legend and
// the reconciled plans.
type Program struct {
	Department string     `json:"department"`
	Categories []Category `json:"categories"`
	Plans      []Plan     `json:"plans"`
}
