package requisite

import (
	"fmt"
	"regexp"
	"strings"

	"progviz/internal/domain"
)

// label pairs the colon form of a requisite label with its colon-less
// fallback. The colon form wins wherever it appears.
type label struct {
	name  string
	colon *regexp.Regexp
	bare  *regexp.Regexp
}

var (
	prerequisite = label{
		name:  "prerequisite",
		colon: regexp.MustCompile(`(?i)prerequisites?: `),
		bare:  regexp.MustCompile(`(?i)prerequisites? `),
	}
	corequisite = label{
		name:  "corequisite",
		colon: regexp.MustCompile(`(?i)corequisites?: `),
		bare:  regexp.MustCompile(`(?i)corequisites? `),
	}

	hyphenFolder = strings.NewReplacer("-requisite", "requisite", "-Requisite", "requisite", "-REQUISITE", "REQUISITE")
)

// Requisites holds the requirements extracted from one description.
type Requisites struct {
	Prereqs []domain.Requirement `json:"prereqs"`
	Coreqs  []domain.Requirement `json:"coreqs"`
}

// Extract pulls both requisite lists out of a course description.
func Extract(description string) (Requisites, error) {
	pre, err := Prereqs(description)
	if err != nil {
		return Requisites{}, err
	}
	co, err := Coreqs(description)
	if err != nil {
		return Requisites{}, err
	}
	return Requisites{Prereqs: pre, Coreqs: co}, nil
}

// Prereqs returns the prerequisites named in description. A description
// without a prerequisite label yields an empty list.
func Prereqs(description string) ([]domain.Requirement, error) {
	return prerequisite.extract(description)
}

// Coreqs returns the corequisites named in description.
func Coreqs(description string) ([]domain.Requirement, error) {
	return corequisite.extract(description)
}

func (l label) extract(description string) ([]domain.Requirement, error) {
	clause, ok := l.clause(description)
	if !ok {
		return []domain.Requirement{}, nil
	}
	reqs, err := Normalize(clause)
	if err != nil {
		return nil, fmt.Errorf("%s clause %q: %w", l.name, clause, err)
	}
	return reqs, nil
}

// clause returns the text between the label and the next period, or the end
// of the description when no period follows.
func (l label) clause(description string) (string, bool) {
	text := hyphenFolder.Replace(description)
	loc := l.colon.FindStringIndex(text)
	if loc == nil {
		loc = l.bare.FindStringIndex(text)
	}
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	if end := strings.Index(rest, "."); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}
