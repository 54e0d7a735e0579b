// Package catalog builds the canonical course catalog.
//
// It reads the course, category and accreditation workbooks, extracts the
// prerequisite and corequisite lists of every course from its description,
// and adds the elective placeholders. The result is an immutable snapshot:
// lookups hand out deep copies, so per-plan reconciliation can never leak
// into the canonical lists.
package catalog
