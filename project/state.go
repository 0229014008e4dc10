// Package project manages the persisted project state files.
//
// Two files live in the project directory: VERSION, holding the release
// identifier, and requirements.txt, the pinned dependency manifest of the
// generated plugin. Both are created with defaults when absent and are never
// overwritten when present; the version is mutated only by manual edits
// between runs.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// State file names within the project directory.
const (
	VersionFile  = "VERSION"
	ManifestFile = "requirements.txt"
)

// DefaultVersion is written to a fresh VERSION file.
const DefaultVersion = "1.0.0"

// defaultManifest pins the generated plugin's runtime dependencies.
const defaultManifest = "requests==2.31.0\nPyYAML==6.0.1\npython-dotenv==1.0.0\n"

// MissingStateError reports a required persisted file that is absent.
// Absence is fatal for the run, not recoverable.
type MissingStateError struct {
	Path string
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("required state file missing: %s", e.Path)
}

// EnsureBaseline checks for the VERSION and requirements.txt files in dir and
// writes hardcoded defaults for any that are missing. Existing files are left
// untouched. Returns the paths it created, for logging.
func EnsureBaseline(dir string) ([]string, error) {
	var created []string

	defaults := []struct {
		name    string
		content string
	}{
		{VersionFile, DefaultVersion},
		{ManifestFile, defaultManifest},
	}

	for _, d := range defaults {
		path := filepath.Join(dir, d.name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return created, fmt.Errorf("cannot stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(d.content), 0o644); err != nil {
			return created, fmt.Errorf("cannot create %s: %w", path, err)
		}
		created = append(created, path)
	}

	return created, nil
}

// ReadVersion reads the release identifier from the VERSION file in dir.
// The value is treated as an opaque token: whitespace is trimmed, nothing is
// validated. Returns *MissingStateError if the file is absent.
func ReadVersion(dir string) (string, error) {
	path := filepath.Join(dir, VersionFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &MissingStateError{Path: path}
		}
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
