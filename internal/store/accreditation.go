package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"progviz/internal/domain"
)

const (
	// accreditationFirstRow is the 0-based row where course rows begin.
	accreditationFirstRow = 4
	accreditationNameCol  = 1
	// accreditationUnitsCol is the 0-based column (I) of the first unit
	// category; the rest follow in domain.AccreditationCategories order.
	accreditationUnitsCol = 8
)

// ReadAccreditation reads accreditation units from the sheet whose cell B1
// names department. A workbook without such a sheet yields a warning and no
// units.
func (w *WorkbookStore) ReadAccreditation(path, department string) (domain.AccreditationSheet, error) {
	sheets, err := w.open(path)
	if err != nil {
		return domain.AccreditationSheet{}, err
	}
	return parseAccreditation(sheets, department), nil
}

func parseAccreditation(sheets []sheet, department string) domain.AccreditationSheet {
	out := domain.AccreditationSheet{Units: map[domain.CourseName]domain.AccreditationUnits{}}

	var s *sheet
	for i := range sheets {
		if strings.EqualFold(strings.TrimSpace(sheets[i].cell(0, 1)), strings.TrimSpace(department)) {
			s = &sheets[i]
			break
		}
	}
	if s == nil {
		out.Warnings = append(out.Warnings, domain.Warning{
			Source:  "accreditation",
			Message: fmt.Sprintf("no sheet for department %q", department),
		})
		return out
	}

	for r := accreditationFirstRow; r < len(s.rows); r++ {
		name := domain.NormalizeCourseName(s.cell(r, accreditationNameCol))
		if name == "" {
			continue
		}
		units := domain.AccreditationUnits{}
		for k, category := range domain.AccreditationCategories {
			raw := strings.TrimSpace(s.cell(r, accreditationUnitsCol+k))
			if raw == "" {
				units[category] = 0
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				out.Warnings = append(out.Warnings, domain.Warning{
					Source:  "accreditation/" + s.name,
					Message: fmt.Sprintf("%s: %s value %q is not a number (row %d)", name, category, raw, r+1),
				})
				units[category] = 0
				continue
			}
			units[category] = math.Round(v*10) / 10
		}
		out.Units[name] = units
	}
	return out
}
