package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/logging"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/persistence"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Résumé editor with ATS scoring",
	Long: "resume_studio keeps a collection of résumés, each with named versions, edits them " +
		"section by section, scores them against applicant tracking system heuristics and " +
		"exports them as plain text.",
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
}

var (
	configPath      string
	dataDir         string
	defaultTemplate string
	outputFormat    string
	debugLogging    bool
	jsonLogging     bool
	assumeYes       bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./resume_studio.yaml if present)")
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the résumé storage file")
	flags.StringVar(&defaultTemplate, "default-template", "", "Template for new résumés")
	flags.StringVar(&outputFormat, "format", "", "Report output format: text or json")
	flags.BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	flags.BoolVar(&jsonLogging, "json", false, "Emit logs as JSON")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")
}

// app is the per-invocation wiring shared by all commands.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	files   *persistence.FileStore
	store   *store.Store
	printer *observability.Printer
	out     io.Writer

	// loaded is the state right after Init. Teardown is skipped while it is still
	// current, so read-only commands never rewrite the storage file.
	loaded *types.State
}

var current *app

func setupApp(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	cfg := loaded.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.JSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	files := persistence.NewFileStore(cfg.DataDir, logger)
	s := store.New(store.WithPersister(files), store.WithLogger(logger))
	s.Init()

	out := cmd.OutOrStdout()
	current = &app{
		cfg:     cfg,
		logger:  logger,
		files:   files,
		store:   s,
		printer: observability.NewPrinter(out),
		out:     out,
		loaded:  s.Snapshot(),
	}
	logger.Debug("storage ready", zap.String("path", files.Path()))
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if current == nil {
		return nil
	}
	defer func() { _ = current.logger.Sync() }()
	if current.store.Snapshot() == current.loaded {
		return nil
	}
	if err := current.store.Teardown(); err != nil {
		return fmt.Errorf("failed to save résumés: %w", err)
	}
	return nil
}
