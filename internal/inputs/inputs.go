package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPattern selects OCR text exports when the input is a directory.
const DefaultPattern = "*.txt"

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input path does not exist")
	// ErrNoInputFiles is returned when a directory contains no matching files.
	ErrNoInputFiles = errors.New("no input files found")
)

// Resolve returns the ordered list of files to convert.
// A regular file resolves to itself; a directory resolves to the regular
// files directly inside it whose names match pattern, sorted lexically.
func Resolve(path, pattern string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	files, err := Scan(path, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s (glob=%s)", ErrNoInputFiles, path, pattern)
	}
	return files, nil
}

// Scan returns the regular files in dir matching pattern, sorted.
func Scan(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			// Dangling symlinks match the pattern but cannot be read.
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}
