package gazetteer

import (
	"archive/zip"
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single gazetteer line. GeoNames lines with very long
// alternate-name lists run to a few hundred KiB.
const maxLineSize = 4 << 20

// forEachSourceLine calls fn with every non-empty line of the gazetteer file at
// path. Plain text, .gz, .bz2 and .zip sources are accepted; every file inside
// a zip archive is read in archive order.
func forEachSourceLine(path string, fn func(line string) error) error {
	switch {
	case strings.HasSuffix(path, ".zip"):
		rz, err := zip.OpenReader(path)
		if err != nil {
			return fmt.Errorf("opening zip file: %w", err)
		}
		defer rz.Close()

		for _, uF := range rz.File {
			if uF.FileInfo().IsDir() {
				continue
			}
			if err := processZipEntry(uF, fn); err != nil {
				return err
			}
		}
		return nil

	case strings.HasSuffix(path, ".gz"):
		fh, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer fh.Close()

		gz, err := gzip.NewReader(fh)
		if err != nil {
			return fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gz.Close()
		return scanLines(gz, fn)

	case strings.HasSuffix(path, ".bz2"):
		fh, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer fh.Close()
		return scanLines(bzip2.NewReader(fh), fn)

	default:
		fh, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer fh.Close()
		return scanLines(fh, fn)
	}
}

// processZipEntry reads a single file entry from a zip archive.
func processZipEntry(uF *zip.File, fn func(line string) error) error {
	fi, err := uF.Open()
	if err != nil {
		return fmt.Errorf("opening %s in zip: %w", uF.Name, err)
	}
	defer fi.Close()

	if err := scanLines(fi, fn); err != nil {
		return fmt.Errorf("reading %s in zip: %w", uF.Name, err)
	}
	return nil
}

func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lines: %w", err)
	}
	return nil
}
