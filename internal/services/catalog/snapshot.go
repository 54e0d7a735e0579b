package catalog

import "progviz/internal/domain"

// snapshot is the immutable catalog handed out by Build.
type snapshot struct {
	order      []string
	byKey      map[string]domain.Course
	categories []domain.Category
}

var _ domain.Catalog = (*snapshot)(nil)

// Lookup returns a deep copy of the named course. Names match ignoring case
// and spacing.
func (s *snapshot) Lookup(name domain.CourseName) (domain.Course, bool) {
	c, ok := s.byKey[name.Key()]
	if !ok {
		return domain.Course{}, false
	}
	return c.Clone(), true
}

// Courses returns copies of every course in workbook order, electives last.
func (s *snapshot) Courses() []domain.Course {
	out := make([]domain.Course, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key].Clone())
	}
	return out
}

// Categories returns the legend in column order.
func (s *snapshot) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}
