package store

import (
	"fmt"
	"strings"

	"progviz/internal/domain"
)

// ReadSequence reads the sequencing workbook. Every sheet is one plan named
// after the sheet. Row 1 holds term names and the cells below list the
// courses of each term. The first sheet carries the department code in A1,
// so its terms start in column B.
func (w *WorkbookStore) ReadSequence(path string) (domain.SequenceWorkbook, error) {
	sheets, err := w.open(path)
	if err != nil {
		return domain.SequenceWorkbook{}, err
	}
	wb, err := parseSequence(sheets)
	if err != nil {
		return domain.SequenceWorkbook{}, fmt.Errorf("%s: %w", path, err)
	}
	return wb, nil
}

func parseSequence(sheets []sheet) (domain.SequenceWorkbook, error) {
	if len(sheets) == 0 {
		return domain.SequenceWorkbook{}, fmt.Errorf("%w: no plan sheets", ErrSheetFormat)
	}
	department := strings.TrimSpace(sheets[0].cell(0, 0))
	if department == "" {
		return domain.SequenceWorkbook{}, fmt.Errorf("%w: sheet %q has no department in A1", ErrSheetFormat, sheets[0].name)
	}

	wb := domain.SequenceWorkbook{Department: department}
	for i, s := range sheets {
		first := 0
		if i == 0 {
			first = 1
		}
		plan := domain.PlanSheet{Name: s.name}
		for c := first; c < s.width(); c++ {
			term := domain.TermColumn{Name: strings.TrimSpace(s.cell(0, c))}
			for r := 1; r < len(s.rows); r++ {
				text := strings.Join(strings.Fields(s.cell(r, c)), " ")
				if text == "" {
					continue
				}
				term.Cells = append(term.Cells, domain.Cell{Row: r + 1, Col: c + 1, Text: text})
			}
			if term.Name == "" && len(term.Cells) == 0 {
				continue
			}
			plan.Terms = append(plan.Terms, term)
		}
		wb.Plans = append(wb.Plans, plan)
	}
	return wb, nil
}
