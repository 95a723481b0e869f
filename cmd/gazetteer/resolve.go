package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreiashu/gazetteer"
)

var (
	resolveFile string
	resolveJSON bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [name...]",
	Short: "Resolve place names against an index",
	Long: `Resolves the given place names, or one name per line from --file ("-" for
stdin), treating them as the location mentions of a single document.`,
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.StringVarP(&resolveFile, "file", "f", "", "read names from file, one per line (- for stdin)")
	f.BoolVar(&resolveJSON, "json", false, "output results as JSON")
	f.Int("max-hit-depth", 5, "candidates per name; 1 disables disambiguation")
	f.Int("max-context-window", 5, "names disambiguated together")
	f.Bool("fuzzy", false, "fall back to fuzzy matching")
	f.Int("fuzzy-distance", 1, "maximum edits per term for fuzzy matching")
	f.String("admin1-codes", "", "admin1CodesASCII.txt for region names")

	_ = v.BindPFlag("resolve.max_hit_depth", f.Lookup("max-hit-depth"))
	_ = v.BindPFlag("resolve.max_context_window", f.Lookup("max-context-window"))
	_ = v.BindPFlag("resolve.fuzzy", f.Lookup("fuzzy"))
	_ = v.BindPFlag("resolve.fuzzy_distance", f.Lookup("fuzzy-distance"))
	_ = v.BindPFlag("resolve.admin1_codes", f.Lookup("admin1-codes"))

	rootCmd.AddCommand(resolveCmd)
}

// resolvedJSON is the JSON shape of one resolved name.
type resolvedJSON struct {
	Input      string  `json:"input"`
	Matched    string  `json:"matched"`
	GeonameID  int     `json:"geonameid"`
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Admin1     string  `json:"admin1"`
	Admin1Name string  `json:"admin1_name,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int64   `json:"population"`
	Fuzzy      bool    `json:"fuzzy"`
	Confidence float64 `json:"confidence"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	names := args
	if resolveFile != "" {
		fromFile, err := readNames(cmd.InOrStdin(), resolveFile)
		if err != nil {
			return err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return fmt.Errorf("no names to resolve")
	}

	r, err := gazetteer.OpenResolver(cfg.Index.Path,
		gazetteer.WithMaxHitDepth(cfg.Resolve.MaxHitDepth),
		gazetteer.WithMaxContextWindow(cfg.Resolve.MaxContextWindow),
		gazetteer.WithFuzzy(cfg.Resolve.Fuzzy),
		gazetteer.WithFuzzyDistance(cfg.Resolve.FuzzyDistance),
		gazetteer.WithLogger(logger),
		gazetteer.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	var admin1 *gazetteer.AdminDivisions
	if cfg.Resolve.Admin1Codes != "" {
		admin1 = gazetteer.NewAdminDivisions(cfg.Resolve.Admin1Codes)
		if err := admin1.Err(); err != nil {
			logger.Warn("admin1 names unavailable", zap.Error(err))
		}
	}

	matches := r.Resolve(names)
	logger.Debug("resolved names", zap.Int("names", len(names)), zap.Int("matches", len(matches)))

	if resolveJSON {
		return outputResolveJSON(cmd, matches, admin1)
	}
	return outputResolveText(cmd, matches, admin1)
}

func readNames(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening names file: %w", err)
		}
		defer fh.Close()
		r = fh
	}

	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	return names, nil
}

func admin1Name(admin1 *gazetteer.AdminDivisions, e gazetteer.Entity) string {
	if admin1 == nil {
		return ""
	}
	div, _ := admin1.ForEntity(e)
	return div.Name
}

func outputResolveJSON(cmd *cobra.Command, matches []gazetteer.ResolvedMatch, admin1 *gazetteer.AdminDivisions) error {
	out := make([]resolvedJSON, len(matches))
	for i, m := range matches {
		out[i] = resolvedJSON{
			Input:      m.InputName,
			Matched:    m.MatchedName,
			GeonameID:  m.Entity.ID,
			Name:       m.Entity.Name,
			Country:    string(m.Entity.CountryCode),
			Admin1:     m.Entity.Admin1Code,
			Admin1Name: admin1Name(admin1, m.Entity),
			Latitude:   m.Entity.Latitude,
			Longitude:  m.Entity.Longitude,
			Population: m.Entity.Population,
			Fuzzy:      m.Fuzzy,
			Confidence: m.Confidence,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputResolveText(cmd *cobra.Command, matches []gazetteer.ResolvedMatch, admin1 *gazetteer.AdminDivisions) error {
	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "No places resolved.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Input", "Place", "Region", "Country", "GeonameID", "Match"})
	for _, m := range matches {
		region := m.Entity.Admin1Code
		if name := admin1Name(admin1, m.Entity); name != "" {
			region = name
		}
		match := "exact"
		if m.Fuzzy {
			match = fmt.Sprintf("fuzzy %.2f", m.Confidence)
			if m.Confidence < 0.5 {
				match = color.YellowString(match)
			}
		}
		if err := table.Append([]string{
			m.InputName,
			m.Entity.Name,
			region,
			m.Entity.CountryCode.Name(),
			strconv.Itoa(m.Entity.ID),
			match,
		}); err != nil {
			return fmt.Errorf("formatting results: %w", err)
		}
	}
	return table.Render()
}
