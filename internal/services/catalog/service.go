package catalog

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"progviz/internal/domain"
	"progviz/internal/requisite"
)

// Service builds catalogs from the workbook readers.
type Service struct {
	courses    domain.CourseReader
	categories domain.CategoryReader
	accred     domain.AccreditationReader
	log        *zap.Logger
}

var _ domain.CatalogService = (*Service)(nil)

func New(cr domain.CourseReader, cat domain.CategoryReader, ar domain.AccreditationReader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{courses: cr, categories: cat, accred: ar, log: log}
}

// Build reads every source and returns the catalog with the non-fatal
// warnings met on the way. The categories and accreditation workbooks are
// optional; an empty path skips them and an unreadable one is a warning.
func (s *Service) Build(src domain.CatalogSources) (domain.Catalog, []domain.Warning, error) {
	courses, err := s.courses.ReadCourses(src.Courses)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: read courses: %w", err)
	}
	s.log.Debug("Courses read", zap.String("path", src.Courses), zap.Int("courses", len(courses)))

	b := newBuilder()
	for _, c := range courses {
		reqs, err := requisite.Extract(c.Description)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: course %s: %w", c.Name, err)
		}
		c.Prereqs, c.Coreqs = reqs.Prereqs, reqs.Coreqs
		if !b.add(c) {
			b.warn("courses", "duplicate course %s; keeping the first row", c.Name)
		}
	}
	for _, p := range domain.ElectivePlaceholders {
		b.add(domain.Course{
			Name:        p.Name,
			Description: p.Description,
			Elective:    p.Kind,
			Prereqs:     []domain.Requirement{},
			Coreqs:      []domain.Requirement{},
		})
	}

	if src.Categories != "" {
		sheet, err := s.categories.ReadCategories(src.Categories)
		if err != nil {
			b.warn("categories", "%v", err)
		} else {
			b.applyCategories(sheet)
		}
	}

	if src.Accreditation != "" {
		sheet, err := s.accred.ReadAccreditation(src.Accreditation, src.Department)
		if err != nil {
			b.warn("accreditation", "%v", err)
		} else {
			b.applyAccreditation(sheet)
		}
	}

	s.log.Info("Catalog built",
		zap.Int("courses", len(b.snap.order)),
		zap.Int("categories", len(b.snap.categories)),
		zap.Int("warnings", len(b.warnings)))
	return b.snap, b.warnings, nil
}

type builder struct {
	snap     *snapshot
	warnings []domain.Warning
}

func newBuilder() *builder {
	return &builder{snap: &snapshot{byKey: map[string]domain.Course{}}}
}

func (b *builder) warn(source, format string, args ...any) {
	b.warnings = append(b.warnings, domain.Warning{Source: source, Message: fmt.Sprintf(format, args...)})
}

func (b *builder) add(c domain.Course) bool {
	key := c.Name.Key()
	if _, dup := b.snap.byKey[key]; dup {
		return false
	}
	b.snap.byKey[key] = c
	b.snap.order = append(b.snap.order, key)
	return true
}

func (b *builder) applyCategories(sheet domain.CategorySheet) {
	b.warnings = append(b.warnings, sheet.Warnings...)
	b.snap.categories = append(b.snap.categories, sheet.Categories...)

	colors := make(map[string]string, len(sheet.Categories))
	for _, cat := range sheet.Categories {
		colors[cat.Name] = cat.Color

		p, ok := domain.LookupElective(strings.ToUpper(cat.Name))
		if !ok {
			continue
		}
		b.update(p.Name, func(c *domain.Course) {
			c.Category, c.Color = cat.Name, cat.Color
		})
	}

	names := make([]domain.CourseName, 0, len(sheet.Members))
	for name := range sheet.Members {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		cat := sheet.Members[name]
		if !b.update(name, func(c *domain.Course) {
			c.Category, c.Color = cat, colors[cat]
		}) {
			b.warn("categories", "%s in category %q is not in the catalog", name, cat)
		}
	}
}

func (b *builder) applyAccreditation(sheet domain.AccreditationSheet) {
	b.warnings = append(b.warnings, sheet.Warnings...)
	for name, units := range sheet.Units {
		units := units
		b.update(name, func(c *domain.Course) { c.Accreditation = units.Clone() })
	}
}

func (b *builder) update(name domain.CourseName, fn func(*domain.Course)) bool {
	key := name.Key()
	c, ok := b.snap.byKey[key]
	if !ok {
		return false
	}
	fn(&c)
	b.snap.byKey[key] = c
	return true
}
