package app

import (
	"go.uber.org/zap"

	"progviz/internal/domain"
	"progviz/internal/reconcile"
	catalogsvc "progviz/internal/services/catalog"
	sequencesvc "progviz/internal/services/sequence"
	sitesvc "progviz/internal/services/site"
	"progviz/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Workbooks *store.WorkbookStore
	Site      *store.SiteFileStore
	Catalog   *catalogsvc.Service
	Sequence  *sequencesvc.Service
	Publisher *sitesvc.Service
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	// File-based stores
	workbooks := store.NewWorkbookStore()
	site := store.NewSiteFileStore(cfg.Output)

	exempt := make([]domain.CourseName, 0, len(cfg.CoreqExempt))
	for _, name := range cfg.CoreqExempt {
		exempt = append(exempt, domain.NormalizeCourseName(name))
	}

	// High-level services
	return &Wire{
		Workbooks: workbooks,
		Site:      site,
		Catalog:   catalogsvc.New(workbooks, workbooks, workbooks, log.Named("catalog")),
		Sequence:  sequencesvc.New(reconcile.New(exempt...), log.Named("sequence")),
		Publisher: sitesvc.New(site, log.Named("site")),
		Log:       log,
	}, nil
}
