package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/observability"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "landing",
		Short: "Bilingual company landing sites",
		Long: `landing serves one-page company sites in two languages, with a
language toggle and overlay dialogs, and can export every site to
static HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "sites.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides log_level in the config file)")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// app bundles what every subcommand loads before doing its work.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *content.Store
	catalog *i18n.Catalog
}

func (o *rootOptions) load() (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := observability.NewLogger(level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	store, err := cfg.BuildStore(cfg.ContentFS())
	if err != nil {
		return nil, fmt.Errorf("loading sites: %w", err)
	}
	catalog, err := i18n.Default()
	if err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}
	return &app{cfg: cfg, logger: logger, store: store, catalog: catalog}, nil
}
