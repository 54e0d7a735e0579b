package types

// Cell is a non-empty sequencing cell with its 1-based position, kept so
// errors can point at the offending spreadsheet location.
type Cell struct {
	Row  int
	Col  int
	Text string
}

// TermColumn is one column of a sequencing sheet.
type TermColumn struct {
	Name  string
	Cells []Cell
}

// PlanSheet is one sheet of the sequencing workbook.
type PlanSheet struct {
	Name  string
	Terms []TermColumn
}

// SequenceWorkbook is the raw sequencing workbook.
type SequenceWorkbook struct {
	// Department is cell A1 of the first sheet.
	Department string
	Plans      []PlanSheet
}

// CategorySheet is the parsed category legend workbook.
type CategorySheet struct {
	Categories []Category
	// Members maps a normalized course name to its category name.
	Members  map[CourseName]string
	Warnings []Warning
}

// AccreditationSheet holds the units parsed for one department.
type AccreditationSheet struct {
	Units    map[CourseName]AccreditationUnits
	Warnings []Warning
}
