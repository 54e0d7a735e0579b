package store

import (
	"fmt"
	"strings"

	"progviz/internal/domain"
)

// courseColumns is the column count of the catalog sheet, in order:
// faculty, department, course id, subject, catalog, long title, effective
// date, status, calendar print, program units, engineering units,
// calculated fee index, actual fee index, duration, alpha hours,
// description.
const courseColumns = 16

// ReadCourses reads the first sheet of the catalog workbook. Row 1 is a
// header; every later row with a subject and catalog number is a course.
func (w *WorkbookStore) ReadCourses(path string) ([]domain.Course, error) {
	sheets, err := w.open(path)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrSheetFormat, path)
	}
	courses, err := parseCourses(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return courses, nil
}

func parseCourses(s sheet) ([]domain.Course, error) {
	if len(s.rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrSheetFormat, s.name)
	}
	if n := len(s.rows[0]); n < courseColumns {
		return nil, fmt.Errorf("%w: sheet %q has %d header columns, want %d", ErrSheetFormat, s.name, n, courseColumns)
	}

	var out []domain.Course
	for r := 1; r < len(s.rows); r++ {
		col := func(c int) string { return strings.TrimSpace(s.cell(r, c)) }

		subject, catalog := col(3), col(4)
		if subject == "" && catalog == "" {
			continue
		}
		out = append(out, domain.Course{
			Name:           domain.NormalizeCourseName(subject + " " + catalog),
			Faculty:        col(0),
			Department:     col(1),
			CourseID:       col(2),
			Subject:        subject,
			Catalog:        catalog,
			LongTitle:      col(5),
			EffectiveDate:  col(6),
			Status:         col(7),
			CalendarPrint:  col(8),
			ProgUnits:      col(9),
			EnggUnits:      col(10),
			CalcFeeIndex:   col(11),
			ActualFeeIndex: col(12),
			Duration:       col(13),
			AlphaHours:     col(14),
			Description:    col(15),
		})
	}
	return out, nil
}
