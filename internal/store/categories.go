package store

import (
	"fmt"
	"strings"

	"progviz/internal/domain"
)

// ReadCategories reads the legend workbook. Each column of the first sheet
// is a category: row 1 holds its name, row 2 its hex colour, and the rows
// below list member courses.
func (w *WorkbookStore) ReadCategories(path string) (domain.CategorySheet, error) {
	sheets, err := w.open(path)
	if err != nil {
		return domain.CategorySheet{}, err
	}
	if len(sheets) == 0 {
		return domain.CategorySheet{}, fmt.Errorf("%w: %s has no sheets", ErrSheetFormat, path)
	}
	return parseCategories(sheets[0]), nil
}

func parseCategories(s sheet) domain.CategorySheet {
	out := domain.CategorySheet{Members: map[domain.CourseName]string{}}
	warn := func(format string, args ...any) {
		out.Warnings = append(out.Warnings, domain.Warning{
			Source:  "categories/" + s.name,
			Message: fmt.Sprintf(format, args...),
		})
	}

	seen := map[string]bool{}
	for c := 0; c < s.width(); c++ {
		name := strings.TrimSpace(s.cell(0, c))
		if name == "" {
			continue
		}
		if seen[name] {
			warn("duplicate category %q in column %d", name, c+1)
			continue
		}
		seen[name] = true

		color, ok := normalizeColor(s.cell(1, c))
		if !ok {
			warn("category %q has invalid colour %q", name, s.cell(1, c))
		}
		out.Categories = append(out.Categories, domain.Category{Name: name, Color: color})

		for r := 2; r < len(s.rows); r++ {
			course := domain.NormalizeCourseName(s.cell(r, c))
			if course == "" {
				continue
			}
			if prev, dup := out.Members[course]; dup {
				warn("%s listed under %q and %q; keeping %q", course, prev, name, prev)
				continue
			}
			out.Members[course] = name
		}
	}
	return out
}

// normalizeColor turns a cell value into a six digit hex colour without the
// leading '#'. Numeric cells lose their ".0" suffix and leading zeros, both
// of which are restored.
func normalizeColor(raw string) (string, bool) {
	c := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if i := strings.IndexByte(c, '.'); i >= 0 && strings.Trim(c[i+1:], "0") == "" {
		c = c[:i]
	}
	if len(c) < 6 && c != "" && strings.Trim(c, "0123456789") == "" {
		c = strings.Repeat("0", 6-len(c)) + c
	}
	if len(c) != 6 || strings.Trim(strings.ToLower(c), "0123456789abcdef") != "" {
		return "", false
	}
	return strings.ToLower(c), true
}
