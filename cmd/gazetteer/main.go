// Command gazetteer builds gazetteer indexes and resolves place names against
// them.
//
// Usage:
//
//	gazetteer build --source allCountries.zip --index ./gazetteer-index/gazetteer.db
//	gazetteer resolve --index ./gazetteer-index/gazetteer.db Springfield Boston Worcester
//
// Settings come from an optional YAML file (--config) and GAZETTEER_*
// environment variables; flags override both. With --metrics-file, each run
// writes its Prometheus metrics in the node_exporter textfile format.
package main

import (
	"fmt"
	"os"

	"github.com/andreiashu/gazetteer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	v          = newViper()
	configPath string

	cfg    *cliConfig
	logger = zap.NewNop()

	// metrics stays nil unless a metrics file is configured.
	metrics  *gazetteer.Metrics
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Resolve place names to GeoNames gazetteer entries",
	Long: `gazetteer builds a searchable index from GeoNames dumps and resolves
lists of place names against it, using the other names of a document to
choose between ambiguous candidates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(v, configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		metrics, registry = nil, nil
		if cfg.Metrics.File != "" {
			registry = prometheus.NewRegistry()
			metrics = gazetteer.NewMetrics(registry)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = logger.Sync() }()
		if registry == nil {
			return nil
		}
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logger.Debug("metrics written", zap.String("path", cfg.Metrics.File))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file path (YAML)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("index", "", "index path; .dmp or .dmp.bz2 selects the in-memory backend")
	pf.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = v.BindPFlag("index.path", pf.Lookup("index"))
	_ = v.BindPFlag("metrics.file", pf.Lookup("metrics-file"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
