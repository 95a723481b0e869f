package gazetteer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"
)

// GeoNames export locations.
const (
	AllCountriesURL = "https://download.geonames.org/export/dump/allCountries.zip"
	Cities1000URL   = "https://download.geonames.org/export/dump/cities1000.zip"
	Admin1CodesURL  = "https://download.geonames.org/export/dump/admin1CodesASCII.txt"
)

// downloadMu serializes downloads so concurrent callers never write the same
// file twice.
var downloadMu sync.Mutex

// httpClient is a shared HTTP client. Callers bound single downloads with ctx.
var httpClient = &http.Client{
	Timeout: 30 * time.Minute,
}

// FetchSource downloads rawURL into dir and returns the local path. A file that
// already exists is not downloaded again.
func FetchSource(ctx context.Context, rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return "", fmt.Errorf("no file name in %s", rawURL)
	}

	downloadMu.Lock()
	defer downloadMu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	localPath := filepath.Join(dir, name)
	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}
	if err := downloadFile(ctx, rawURL, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

func downloadFile(ctx context.Context, rawURL, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", rawURL, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP GET %s: status %d", rawURL, resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", dst, err)
	}

	// Partial files are removed on any failure.
	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(dst)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing file %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", dst, err)
	}
	success = true
	return nil
}
