package interfaces

import domaintypes "progviz/internal/domain/types"

// CourseReader loads the course catalog workbook.
type CourseReader interface {
	ReadCourses(path string) ([]domaintypes.Course, error)
}

// CategoryReader loads the category legend workbook. Problems with single
// columns are reported as warnings; only an unreadable file is an error.
type CategoryReader interface {
	ReadCategories(path string) (domaintypes.CategorySheet, error)
}

// AccreditationReader loads accreditation units for one department.
type AccreditationReader interface {
	ReadAccreditation(path, department string) (domaintypes.AccreditationSheet, error)
}

// SequenceReader loads the plan sequencing workbook.
type SequenceReader interface {
	ReadSequence(path string) (domaintypes.SequenceWorkbook, error)
}

// SiteStore persists generated site files under an output root.
type SiteStore interface {
	WriteFile(rel string, data []byte) error
	ReadFile(rel string) ([]byte, error)
	SaveManifest(m domaintypes.Manifest) error
	LoadManifest() (domaintypes.Manifest, bool, error)
}
