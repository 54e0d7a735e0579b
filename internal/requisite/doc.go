// Package requisite extracts prerequisite and corequisite requirements from
// free-text catalog descriptions.
//
// Pipeline
//
//   - Extract locates the "Prerequisite(s):" / "Corequisite(s):" clause (or the
//     colon-less form) and cuts it at the next period.
//   - Normalize splits the clause into tokens, pre-processes them (brackets,
//     semicolons, slash alternatives, non-course prose) and walks them with a
//     small state machine that builds one requirement per required course,
//     folding "one of", "either" and "or ..." continuations into disjunctions.
//   - ResolveDepartment supplies the department for bare catalog numbers
//     ("MATH 100 or 102" means "MATH 100 or MATH 102").
//
// # Heuristics
//
// The thresholds are tuned to University of Alberta calendar prose: catalog
// numbers are exactly three digits, a token with fewer than three digits or
// longer than 16 characters is not a course, " and" and "/" are separators.
// A bare number whose department cannot be found is a hard error; emitting an
// unqualified number as a requirement would silently corrupt the plan.
package requisite
