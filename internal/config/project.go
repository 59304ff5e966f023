package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyVersion is returned when the version file has no version on its
// first line.
var ErrEmptyVersion = errors.New("version file is empty")

// LoadProjectVersion returns the first line of the version file, trimmed.
func LoadProjectVersion(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not read VERSION file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("could not read VERSION file %s: %w", path, err)
		}
		return "", fmt.Errorf("%s: %w", path, ErrEmptyVersion)
	}
	v := strings.TrimSpace(sc.Text())
	if v == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyVersion)
	}
	return v, nil
}
