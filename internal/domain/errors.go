package domain

import (
	"errors"
	"fmt"
)

// ErrCourseNotInCatalog is returned when a sequencing cell names a course
// the catalog workbook does not contain.
var ErrCourseNotInCatalog = errors.New("referenced course not present in catalog")

// LocationError pins ErrCourseNotInCatalog to a plan, term and cell.
type LocationError struct {
	Plan string
	Term string
	Row  int
	Col  int
	Name string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%v: %q on sheet %q, term %q (row %d, column %d)",
		ErrCourseNotInCatalog, e.Name, e.Plan, e.Term, e.Row, e.Col)
}

// Unwrap lets errors.Is match ErrCourseNotInCatalog.
func (e *LocationError) Unwrap() error { return ErrCourseNotInCatalog }
