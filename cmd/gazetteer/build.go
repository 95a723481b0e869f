package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreiashu/gazetteer"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a gazetteer index from GeoNames dumps",
	Long: `Reads one or more GeoNames dumps (plain, .gz, .bz2 or .zip) and writes a
searchable index. Supplementary sources are indexed after the main sources.
With --download the main source is fetched first when it is not on disk.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("source", nil, "gazetteer source file (repeatable)")
	f.StringSlice("supplementary", nil, "supplementary gazetteer file (repeatable)")
	f.Int("batch-size", 5000, "name entries written per transaction")
	f.String("data-dir", "./gazetteer-data", "directory for downloaded dumps")
	f.String("download", "", "URL to fetch the main source from, e.g. "+gazetteer.Cities1000URL)

	_ = v.BindPFlag("build.sources", f.Lookup("source"))
	_ = v.BindPFlag("build.supplementary", f.Lookup("supplementary"))
	_ = v.BindPFlag("build.batch_size", f.Lookup("batch-size"))
	_ = v.BindPFlag("build.data_dir", f.Lookup("data-dir"))
	_ = v.BindPFlag("build.download_url", f.Lookup("download"))

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sources := cfg.Build.Sources
	if cfg.Build.DownloadURL != "" {
		path, err := gazetteer.FetchSource(ctx, cfg.Build.DownloadURL, cfg.Build.DataDir)
		if err != nil {
			return fmt.Errorf("fetching source: %w", err)
		}
		logger.Info("gazetteer source ready", zap.String("path", path))
		sources = append([]string{path}, sources...)
	}
	if len(sources) == 0 {
		return errors.New("no gazetteer source: pass --source or --download")
	}

	opts := []gazetteer.BuilderOption{
		gazetteer.WithBuildLogger(logger),
		gazetteer.WithBatchSize(cfg.Build.BatchSize),
		gazetteer.WithBuildMetrics(metrics),
	}
	supplementary := append(sources[1:len(sources):len(sources)], cfg.Build.Supplementary...)

	stats, err := buildIndex(ctx, cfg.Index.Path, sources[0], supplementary, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %s records as %s name entries in %s\n",
		humanize.Comma(int64(stats.Records)), humanize.Comma(int64(stats.Entries)), stats.Elapsed.Round(time.Millisecond))
	return nil
}

// buildIndex writes a SQLite index, or a gob snapshot when path ends in .dmp.
func buildIndex(ctx context.Context, path, primary string, supplementary []string, opts []gazetteer.BuilderOption) (gazetteer.BuildStats, error) {
	if strings.HasSuffix(path, ".dmp") {
		idx := gazetteer.NewMemoryIndex()
		stats, err := gazetteer.BuildIndex(ctx, idx, primary, supplementary, opts...)
		if err != nil {
			return stats, err
		}
		if err := idx.Save(path); err != nil {
			return stats, fmt.Errorf("saving index: %w", err)
		}
		return stats, nil
	}

	w, err := gazetteer.CreateSQLiteIndex(path)
	if err != nil {
		return gazetteer.BuildStats{}, err
	}
	return gazetteer.BuildIndex(ctx, w, primary, supplementary, opts...)
}
