package store

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"progviz/internal/domain"
)

// ErrSheetFormat marks a workbook whose layout does not match what the
// parser expects.
var ErrSheetFormat = errors.New("store: unexpected sheet layout")

// sheet is one worksheet as a ragged grid of cell text.
type sheet struct {
	name string
	rows [][]string
}

// cell returns the text at 0-based (row, col), or "" outside the grid.
func (s sheet) cell(row, col int) string {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return ""
	}
	return s.rows[row][col]
}

// width is the length of the longest row.
func (s sheet) width() int {
	w := 0
	for _, r := range s.rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// WorkbookStore reads the program workbooks from disk.
type WorkbookStore struct {
	open func(path string) ([]sheet, error)
}

// NewWorkbookStore returns a WorkbookStore reading .xlsx files.
func NewWorkbookStore() *WorkbookStore {
	return &WorkbookStore{open: readWorkbook}
}

func readWorkbook(path string) ([]sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var out []sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("store: read sheet %q of %s: %w", name, path, err)
		}
		out = append(out, sheet{name: name, rows: rows})
	}
	return out, nil
}

// Compile-time assertions that WorkbookStore implements the domain readers.
var (
	_ domain.CourseReader        = (*WorkbookStore)(nil)
	_ domain.CategoryReader      = (*WorkbookStore)(nil)
	_ domain.SequenceReader      = (*WorkbookStore)(nil)
	_ domain.AccreditationReader = (*WorkbookStore)(nil)
)
