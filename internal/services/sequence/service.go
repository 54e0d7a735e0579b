package sequence

import (
	"strings"

	"go.uber.org/zap"

	"progviz/internal/domain"
	"progviz/internal/reconcile"
)

// alternativeSep separates the options of a sequencing cell. Cells are
// upper-cased before splitting.
const alternativeSep = " OR "

// Service resolves and reconciles plans.
type Service struct {
	classifier *reconcile.Classifier
	log        *zap.Logger
}

var _ domain.SequenceService = (*Service)(nil)

func New(classifier *reconcile.Classifier, log *zap.Logger) *Service {
	if classifier == nil {
		classifier = reconcile.New(reconcile.DefaultExempt...)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{classifier: classifier, log: log}
}

// Plans resolves every plan sheet against cat and reconciles the result.
// A cell naming a course missing from cat fails with a *domain.LocationError.
func (s *Service) Plans(cat domain.Catalog, wb domain.SequenceWorkbook) ([]domain.Plan, error) {
	plans := make([]domain.Plan, 0, len(wb.Plans))
	for _, sheet := range wb.Plans {
		p, err := resolve(cat, sheet)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	out := s.classifier.ReconcileAll(plans)
	for _, p := range out {
		s.log.Debug("Plan reconciled",
			zap.String("plan", p.Name),
			zap.Int("terms", len(p.Terms)),
			zap.Int("courses", len(p.Courses())))
	}
	return out, nil
}

func resolve(cat domain.Catalog, sheet domain.PlanSheet) (domain.Plan, error) {
	plan := domain.Plan{Name: sheet.Name, Terms: make([]domain.Term, 0, len(sheet.Terms))}
	for _, col := range sheet.Terms {
		term := domain.Term{Name: col.Name, Slots: []domain.Slot{}}
		group := 0
		for _, cell := range col.Cells {
			names := strings.Split(string(domain.NormalizeCourseName(cell.Text)), alternativeSep)
			alternative := len(names) > 1
			if alternative {
				group++
			}
			for _, raw := range names {
				name := domain.CourseName(strings.TrimSpace(raw))
				if p, ok := domain.LookupElective(string(name)); ok {
					name = p.Name
				}
				course, ok := cat.Lookup(name)
				if !ok {
					return domain.Plan{}, &domain.LocationError{
						Plan: sheet.Name,
						Term: col.Name,
						Row:  cell.Row,
						Col:  cell.Col,
						Name: string(name),
					}
				}
				slot := domain.Slot{Course: course, Alternative: alternative}
				if alternative {
					slot.Group = group
				}
				term.Slots = append(term.Slots, slot)
			}
		}
		plan.Terms = append(plan.Terms, term)
	}
	return plan, nil
}
