package render

import (
	"strconv"
	"strings"
	"unicode"

	"progviz/internal/domain"
)

// cleanID keeps the ASCII letters and digits of s, for use in element ids
// and class names.
func cleanID(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// layout assigns the element ids shared by index.html and plans.js.
type layout struct {
	plans []planLayout
}

type planLayout struct {
	id   string
	plan domain.Plan
	// ids[t][s] is the element id of slot s in term t.
	ids [][]string
}

func newLayout(p domain.Program) layout {
	var l layout
	planIDs := uniqueIDs{}
	for _, plan := range p.Plans {
		pl := planLayout{id: planIDs.next(cleanID(plan.Name), "plan"), plan: plan}

		courseIDs := uniqueIDs{}
		electives := map[domain.ElectiveKind]int{}
		for _, term := range plan.Terms {
			ids := make([]string, len(term.Slots))
			for i, slot := range term.Slots {
				base := cleanID(string(slot.Course.Name)) + pl.id
				if kind := slot.Course.Elective; kind != domain.ElectiveNone {
					base += strconv.Itoa(electives[kind])
					electives[kind]++
				}
				ids[i] = courseIDs.next(base, "course")
			}
			pl.ids = append(pl.ids, ids)
		}
		l.plans = append(l.plans, pl)
	}
	return l
}

// uniqueIDs hands out ids, suffixing repeats with a counter.
type uniqueIDs map[string]int

func (u uniqueIDs) next(base, fallback string) string {
	if base == "" {
		base = fallback
	}
	n := u[base]
	u[base] = n + 1
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n+1)
}

// categoryClass is the CSS class a course is highlighted with.
func categoryClass(c domain.Course) string {
	if c.Category != "" {
		return cleanID(c.Category)
	}
	return string(c.Elective)
}
