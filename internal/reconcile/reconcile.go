package reconcile

import (
	"progviz/internal/domain"
)

// DefaultExempt lists courses whose calendar corequisite text is known to be
// wrong; their corequisites are pruned but never demoted.
var DefaultExempt = []domain.CourseName{"ENGG 160"}

// Classifier reconciles plans. The zero value has no exemptions.
type Classifier struct {
	exempt set
}

// New returns a Classifier that never demotes the corequisites of the named
// courses.
func New(exempt ...domain.CourseName) *Classifier {
	c := &Classifier{exempt: set{}}
	for _, name := range exempt {
		c.exempt.add(name)
	}
	return c
}

// Reconcile returns a reconciled deep copy of plan; plan itself is not
// modified. Reconciling the result again returns an equal plan.
func (c *Classifier) Reconcile(plan domain.Plan) domain.Plan {
	out := plan.Clone()

	offered := set{}
	for _, course := range out.Courses() {
		offered.add(course.Name)
	}

	for ti := range out.Terms {
		sameTerm := set{}
		for _, slot := range out.Terms[ti].Slots {
			sameTerm.add(slot.Course.Name)
		}
		for si := range out.Terms[ti].Slots {
			course := &out.Terms[ti].Slots[si].Course
			course.Prereqs, course.Coreqs = c.classify(*course, offered, sameTerm)
		}
	}
	return out
}

// ReconcileAll reconciles every plan independently.
func (c *Classifier) ReconcileAll(plans []domain.Plan) []domain.Plan {
	out := make([]domain.Plan, len(plans))
	for i, p := range plans {
		out[i] = c.Reconcile(p)
	}
	return out
}

func (c *Classifier) classify(course domain.Course, offered, sameTerm set) (prereqs, coreqs []domain.Requirement) {
	exempt := c.exempt.has(course.Name)
	prereqs = []domain.Requirement{}
	coreqs = []domain.Requirement{}

	var demoted, promoted []domain.Requirement
	for _, req := range course.Coreqs {
		opts, ok := prune(req, offered)
		if !ok {
			continue
		}
		// A corequisite with one option in this term stays put: the
		// prerequisite pass would promote it straight back.
		if exempt || sameTerm.any(opts) {
			coreqs = appendUnique(coreqs, domain.JoinOptions(opts))
		} else {
			demoted = append(demoted, domain.JoinOptions(opts))
		}
	}
	for _, req := range course.Prereqs {
		opts, ok := prune(req, offered)
		if !ok {
			continue
		}
		if sameTerm.any(opts) {
			promoted = append(promoted, domain.JoinOptions(opts))
		} else {
			prereqs = appendUnique(prereqs, domain.JoinOptions(opts))
		}
	}
	for _, req := range demoted {
		prereqs = appendUnique(prereqs, req)
	}
	for _, req := range promoted {
		coreqs = appendUnique(coreqs, req)
	}
	return prereqs, coreqs
}

// prune keeps the options of req that the plan offers, in their original
// order. ok is false when none survive.
func prune(req domain.Requirement, offered set) ([]domain.CourseName, bool) {
	var kept []domain.CourseName
	for _, opt := range req.Options() {
		if offered.has(opt) {
			kept = append(kept, opt)
		}
	}
	return kept, len(kept) > 0
}

func appendUnique(reqs []domain.Requirement, req domain.Requirement) []domain.Requirement {
	for _, r := range reqs {
		if r == req {
			return reqs
		}
	}
	return append(reqs, req)
}

// set holds course name keys, so spacing and case differences between the
// catalog and description text do not matter.
type set map[string]struct{}

func (s set) add(name domain.CourseName) { s[name.Key()] = struct{}{} }

func (s set) has(name domain.CourseName) bool {
	_, ok := s[name.Key()]
	return ok
}

func (s set) any(names []domain.CourseName) bool {
	for _, n := range names {
		if s.has(n) {
			return true
		}
	}
	return false
}
