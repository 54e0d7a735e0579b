// Package store reads the program spreadsheets and persists the generated
// site.
//
// Workbooks are read with excelize into plain cell grids and parsed into the
// raw records of internal/domain:
//   - course catalog (WorkbookStore.ReadCourses)
//   - category legend (WorkbookStore.ReadCategories)
//   - plan sequencing (WorkbookStore.ReadSequence)
//   - accreditation units (WorkbookStore.ReadAccreditation)
//
// Malformed catalog or sequencing sheets are errors wrapping ErrSheetFormat.
// Category and accreditation problems are returned as warnings next to the
// partial result.
//
// SiteFileStore writes output files atomically (temp file + rename) below
// the configured output directory and keeps a JSON manifest of digests.
package store
