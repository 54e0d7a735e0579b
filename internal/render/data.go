package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"progviz/internal/domain"
)

// plansVar is the global the controller script reads.
const plansVar = "window.PROGVIZ_PLANS"

type jsPlan struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Courses []jsCourse `json:"courses"`
}

type jsCourse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Term     string          `json:"term"`
	Category string          `json:"category,omitempty"`
	Prereqs  []jsRequirement `json:"prereqs"`
	Coreqs   []jsRequirement `json:"coreqs"`
}

// jsRequirement is one requirement expression with the element ids of the
// options scheduled in the same plan.
type jsRequirement struct {
	Text string   `json:"text"`
	IDs  []string `json:"ids"`
}

// PlansJS renders js/plans.js: the reconciled requirements of every course
// of every plan, keyed by the element ids used in index.html.
func PlansJS(p domain.Program) ([]byte, error) {
	l := newLayout(p)
	plans := make([]jsPlan, 0, len(l.plans))
	for _, pl := range l.plans {
		byName := map[string][]string{}
		for t, term := range pl.plan.Terms {
			for s, slot := range term.Slots {
				key := slot.Course.Name.Key()
				byName[key] = append(byName[key], pl.ids[t][s])
			}
		}

		jp := jsPlan{ID: pl.id, Name: pl.plan.Name, Courses: []jsCourse{}}
		for t, term := range pl.plan.Terms {
			for s, slot := range term.Slots {
				jp.Courses = append(jp.Courses, jsCourse{
					ID:       pl.ids[t][s],
					Name:     string(slot.Course.Name),
					Term:     term.Name,
					Category: categoryClass(slot.Course),
					Prereqs:  requirementIDs(slot.Course.Prereqs, byName),
					Coreqs:   requirementIDs(slot.Course.Coreqs, byName),
				})
			}
		}
		plans = append(plans, jp)
	}

	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode plans: %w", err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s = %s;\n", plansVar, data)
	return buf.Bytes(), nil
}

func requirementIDs(reqs []domain.Requirement, byName map[string][]string) []jsRequirement {
	out := make([]jsRequirement, 0, len(reqs))
	for _, r := range reqs {
		jr := jsRequirement{Text: string(r), IDs: []string{}}
		for _, opt := range r.Options() {
			jr.IDs = append(jr.IDs, byName[opt.Key()]...)
		}
		out = append(out, jr)
	}
	return out
}
