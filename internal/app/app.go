package app

import (
	"fmt"

	"go.uber.org/zap"

	"progviz/internal/domain"
	"progviz/internal/logging"
)

// App runs the build pipeline: ingest, extract, sequence, reconcile,
// render and write.
type App struct {
	cfg  Config
	wire *Wire
}

func New(cfg Config, w *Wire) *App {
	return &App{cfg: cfg, wire: w}
}

// Snapshot is the catalog and reconciled program of one run.
type Snapshot struct {
	Catalog  domain.Catalog
	Program  domain.Program
	Warnings []domain.Warning
}

// Result is a finished build.
type Result struct {
	Snapshot
	Manifest domain.Manifest
}

// department returns the configured department, or cell A1 of the
// sequencing workbook.
func (a *App) department(wb domain.SequenceWorkbook) string {
	if a.cfg.Department != "" {
		return a.cfg.Department
	}
	return wb.Department
}

// Catalog builds the course catalog only. Every description is extracted
// before any plan is touched.
func (a *App) Catalog() (domain.Catalog, []domain.Warning, error) {
	wb, err := a.wire.Workbooks.ReadSequence(a.cfg.Sequence)
	if err != nil {
		return nil, nil, err
	}
	return a.catalog(wb)
}

func (a *App) catalog(wb domain.SequenceWorkbook) (domain.Catalog, []domain.Warning, error) {
	cat, warnings, err := a.wire.Catalog.Build(domain.CatalogSources{
		Courses:       a.cfg.Courses,
		Categories:    a.cfg.Categories,
		Accreditation: a.cfg.Accreditation,
		Department:    a.department(wb),
	})
	if err != nil {
		return nil, nil, err
	}
	logging.Warnings(a.wire.Log, warnings)
	return cat, warnings, nil
}

// Plan builds the catalog and the reconciled plans without writing output.
func (a *App) Plan() (Snapshot, error) {
	wb, err := a.wire.Workbooks.ReadSequence(a.cfg.Sequence)
	if err != nil {
		return Snapshot{}, err
	}
	cat, warnings, err := a.catalog(wb)
	if err != nil {
		return Snapshot{}, err
	}
	plans, err := a.wire.Sequence.Plans(cat, wb)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sequence: %w", err)
	}
	return Snapshot{
		Catalog:  cat,
		Warnings: warnings,
		Program: domain.Program{
			Department: a.department(wb),
			Categories: cat.Categories(),
			Plans:      plans,
		},
	}, nil
}

// Build runs the whole pipeline and writes the site.
func (a *App) Build() (Result, error) {
	snap, err := a.Plan()
	if err != nil {
		return Result{}, err
	}
	m, err := a.wire.Publisher.Publish(snap.Program)
	if err != nil {
		return Result{}, err
	}
	a.wire.Log.Info("Build complete",
		zap.String("department", snap.Program.Department),
		zap.String("output", a.cfg.Output),
		zap.Int("warnings", len(snap.Warnings)))
	return Result{Snapshot: snap, Manifest: m}, nil
}
