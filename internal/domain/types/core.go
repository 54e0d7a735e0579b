package types

import "strings"

// CourseName is a department-qualified course name such as "MATH 100".
type CourseName string

// String returns the string form of the course name.
func (n CourseName) String() string { return string(n) }

// Key folds the name to the form used for set membership: upper case with
// every whitespace run removed, so "CH E 441" and "CHE441" compare equal.
func (n CourseName) Key() string {
	return strings.ToUpper(strings.Join(strings.Fields(string(n)), ""))
}

// NormalizeCourseName upper-cases a spreadsheet cell and collapses whitespace
// runs to a single space.
func NormalizeCourseName(raw string) CourseName {
	return CourseName(strings.ToUpper(strings.Join(strings.Fields(raw), " ")))
}

// OrSeparator joins the options of a disjunctive requirement.
const OrSeparator = " or "

// Requirement is a requisite expression: one course name, or several joined by
// OrSeparator meaning any one of them suffices.
type Requirement string

// String returns the string form of the requirement.
func (r Requirement) String() string { return string(r) }

// Options splits the requirement into its disjuncts.
func (r Requirement) Options() []CourseName {
	parts := strings.Split(string(r), OrSeparator)
	out := make([]CourseName, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, CourseName(p))
		}
	}
	return out
}

// JoinOptions builds a requirement from its disjuncts.
func JoinOptions(opts []CourseName) Requirement {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return Requirement(strings.Join(parts, OrSeparator))
}

// CloneRequirements returns an independent copy of reqs.
func CloneRequirements(reqs []Requirement) []Requirement {
	if reqs == nil {
		return nil
	}
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}

// Warning is a non-fatal ingestion problem. Affected fields are left blank and
// the rest of the data is kept.
type Warning struct {
	Source  string
	Message string
}

// String returns "source: message".
func (w Warning) String() string { return w.Source + ": " + w.Message }
