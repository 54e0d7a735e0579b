package interfaces

import domaintypes "progviz/internal/domain/types"

// CatalogService builds the extracted-requirements snapshot.
type CatalogService interface {
	Build(src CatalogSources) (Catalog, []domaintypes.Warning, error)
}

// CatalogSources names the workbooks feeding the catalog.
type CatalogSources struct {
	Courses       string
	Categories    string
	Accreditation string
	Department    string
}

// Catalog is read-only access to canonical course records. Lookups return
// copies so callers can never mutate the canonical lists.
type Catalog interface {
	Lookup(name domaintypes.CourseName) (domaintypes.Course, bool)
	Courses() []domaintypes.Course
	Categories() []domaintypes.Category
}

// SequenceService turns the sequencing workbook into reconciled plans.
type SequenceService interface {
	Plans(cat Catalog, wb domaintypes.SequenceWorkbook) ([]domaintypes.Plan, error)
}

// SiteService renders and writes the static site.
type SiteService interface {
	Publish(p domaintypes.Program) (domaintypes.Manifest, error)
}
