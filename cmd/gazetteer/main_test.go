package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testGazetteer = "../../testdata/gazetteer.txt"
	testAdmin1    = "../../testdata/admin1CodesASCII.txt"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig(newViper(), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Index.Path != "./gazetteer-index/gazetteer.db" {
		t.Errorf("index.path = %q", c.Index.Path)
	}
	if c.Resolve.MaxHitDepth != 5 || c.Resolve.MaxContextWindow != 5 || c.Resolve.Fuzzy || c.Resolve.FuzzyDistance != 1 {
		t.Errorf("resolve defaults = %+v", c.Resolve)
	}
	if c.Build.BatchSize != 5000 || c.Log.Format != "console" {
		t.Errorf("build/log defaults = %+v / %+v", c.Build, c.Log)
	}
	if c.Metrics.File != "" {
		t.Errorf("metrics.file = %q, want disabled", c.Metrics.File)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazetteer.yaml")
	yaml := `
log:
  level: debug
  format: json
index:
  path: /var/lib/gazetteer/index.db
build:
  sources:
    - allCountries.zip
  batch_size: 100
resolve:
  max_hit_depth: 3
  fuzzy: true
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GAZETTEER_RESOLVE_MAX_HIT_DEPTH", "7")
	t.Setenv("GAZETTEER_INDEX_PATH", "/tmp/override.db")

	c, err := loadConfig(newViper(), path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Index.Path != "/tmp/override.db" {
		t.Errorf("environment did not override index.path: %q", c.Index.Path)
	}
	if c.Resolve.MaxHitDepth != 7 {
		t.Errorf("max_hit_depth = %d, want 7 from the environment", c.Resolve.MaxHitDepth)
	}
	if !c.Resolve.Fuzzy || c.Resolve.MaxContextWindow != 5 {
		t.Errorf("resolve = %+v", c.Resolve)
	}
	if len(c.Build.Sources) != 1 || c.Build.Sources[0] != "allCountries.zip" || c.Build.BatchSize != 100 {
		t.Errorf("build = %+v", c.Build)
	}
	if c.Log.Level != "debug" || c.Log.Format != "json" {
		t.Errorf("log = %+v", c.Log)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadConfig(newViper(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing config file accepted")
	}

	tests := map[string]string{
		"bad format":     "log:\n  format: xml\n",
		"bad batch size": "build:\n  batch_size: 0\n",
		"empty index":    "index:\n  path: \"\"\n",
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(newViper(), path); err == nil {
				t.Errorf("%q accepted", yaml)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := newLogger("warn", format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if l.Core().Enabled(-1) {
			t.Errorf("%s: debug enabled at warn level", format)
		}
	}
	l, err := newLogger("chatty", "json")
	if err != nil || !l.Core().Enabled(0) {
		t.Errorf("unknown level should fall back to info: %v", err)
	}
}

func TestReadNames(t *testing.T) {
	names, err := readNames(strings.NewReader("Boston\n\n  Worcester  \n"), "-")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Boston" || names[1] != "Worcester" {
		t.Errorf("readNames = %q", names)
	}
	if _, err := readNames(nil, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing names file accepted")
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetOut(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("gazetteer %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestBuildAndResolve(t *testing.T) {
	index := filepath.Join(t.TempDir(), "gazetteer.dmp")

	out := execute(t, "build", "--log-level", "error", "--index", index, "--source", testGazetteer)
	if !strings.Contains(out, "Indexed 48 records as 60 name entries") {
		t.Errorf("build output = %q", out)
	}

	out = execute(t, "resolve", "--log-level", "error", "--index", index, "--json",
		"--admin1-codes", testAdmin1, "Springfield", "Chicago")
	var results []resolvedJSON
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if r := results[0]; r.GeonameID != 4250542 || r.Admin1Name != "Illinois" || r.Country != "US" {
		t.Errorf("Springfield resolved as %+v", r)
	}
	if r := results[1]; r.GeonameID != 4887398 || r.Input != "Chicago" || r.Fuzzy {
		t.Errorf("Chicago resolved as %+v", r)
	}

	out = execute(t, "resolve", "--log-level", "error", "--index", index, "--json=false",
		"--admin1-codes", testAdmin1, "Springfield", "Kansas City")
	if !strings.Contains(out, "Springfield") || !strings.Contains(out, "4409896") || !strings.Contains(out, "Missouri") {
		t.Errorf("text output = %q", out)
	}
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "gazetteer.dmp")
	buildMetrics := filepath.Join(dir, "build.prom")
	resolveMetrics := filepath.Join(dir, "resolve.prom")
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("metrics-file", "") })

	execute(t, "build", "--log-level", "error", "--index", index, "--source", testGazetteer,
		"--metrics-file", buildMetrics)
	data, err := os.ReadFile(buildMetrics)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "gazetteer_index_entries_total 60\n") {
		t.Errorf("build metrics = %q", data)
	}

	execute(t, "resolve", "--log-level", "error", "--index", index, "--json",
		"--metrics-file", resolveMetrics, "Springfield", "Chicago", "Atlantis")
	data, err = os.ReadFile(resolveMetrics)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`gazetteer_candidate_lookups_total{outcome="exact"} 2`,
		`gazetteer_candidate_lookups_total{outcome="miss"} 1`,
		"gazetteer_resolve_duration_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("resolve metrics missing %q:\n%s", want, data)
		}
	}
	if strings.Contains(string(data), "gazetteer_index_entries_total 60") {
		t.Error("resolve run reused the build registry")
	}
}
