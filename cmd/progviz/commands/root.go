package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"progviz/internal/app"
	"progviz/internal/logging"
)

var (
	configPath string
	verbose    bool
	overrides  app.Config

	cfg    app.Config
	logger *zap.Logger
	appCtx *app.App
	wire   *app.Wire
)

// Execute runs the progviz command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath, verbose, overrides = app.DefaultConfigFile, false, app.Config{}
	cfg, logger, appCtx, wire = app.Config{}, nil, nil, nil

	root := &cobra.Command{
		Use:          "progviz",
		Short:        "Generate an interactive program plan visualizer from course spreadsheets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// init creates the file, so it may not exist yet.
			required := cmd.Flags().Changed("config") && cmd.Name() != "init"
			loaded, err := app.LoadConfig(configPath, required)
			if err != nil {
				return err
			}
			applyFlags(cmd, &loaded)
			cfg = loaded

			logger, err = logging.New(cfg.LogLevel, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", app.DefaultConfigFile, "config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVarP(&overrides.Output, "output", "o", "", "output directory")
	pf.StringVar(&overrides.Courses, "courses", "", "course catalog workbook")
	pf.StringVar(&overrides.Categories, "categories", "", "category legend workbook")
	pf.StringVar(&overrides.Sequence, "sequence", "", "sequencing workbook")
	pf.StringVar(&overrides.Accreditation, "accreditation", "", "accreditation units workbook")
	pf.StringVar(&overrides.Department, "department", "", "department code (default: sequencing sheet A1)")

	root.AddCommand(initCmd(), buildCmd(), watchCmd(), requisitesCmd(), plansCmd(), fingerprintCmd())
	return root
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, c *app.Config) {
	flags := cmd.Flags()
	for name, pair := range map[string][2]*string{
		"output":        {&c.Output, &overrides.Output},
		"courses":       {&c.Courses, &overrides.Courses},
		"categories":    {&c.Categories, &overrides.Categories},
		"sequence":      {&c.Sequence, &overrides.Sequence},
		"accreditation": {&c.Accreditation, &overrides.Accreditation},
		"department":    {&c.Department, &overrides.Department},
	} {
		if flags.Changed(name) {
			*pair[0] = *pair[1]
		}
	}
}

// requireApp builds the dependency graph on first use.
func requireApp() (*app.App, error) {
	if appCtx != nil {
		return appCtx, nil
	}
	w, err := app.NewWire(cfg, logger)
	if err != nil {
		return nil, err
	}
	wire, appCtx = w, app.New(cfg, w)
	return appCtx, nil
}
