// Package scaffold materializes the plugin file tree from embedded templates.
//
// The assets are embedded at build time, keeping the foundry binary
// self-contained: no template directory needs to ship alongside it. Each
// asset is keyed by its output file name; the only substitution is the
// version token, so generation with the same version is byte-identical
// across runs.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed assets
var assets embed.FS

// versionToken is replaced with the release identifier during generation.
const versionToken = "{{VERSION}}"

// DefaultPluginDir is the plugin directory name created under the project
// directory.
const DefaultPluginDir = "softaculous"

// Asset describes one generated file.
type Asset struct {
	// Name is the file name within the plugin directory.
	Name string
	// Mode is the permission mode of the written file. Script-like outputs
	// carry the executable bit.
	Mode fs.FileMode
}

// Manifest is the fixed set of generated artifacts, in write order.
var Manifest = []Asset{
	{Name: "softaculous_main.py", Mode: 0o755},
	{Name: "info.json", Mode: 0o644},
	{Name: "index.html", Mode: 0o644},
	{Name: "install.sh", Mode: 0o755},
	{Name: "Dockerfile", Mode: 0o644},
}

// Generator writes the plugin scaffold into a project directory.
type Generator struct {
	// Dir is the project directory.
	Dir string
	// PluginDir is the plugin directory name under Dir.
	// Empty means DefaultPluginDir.
	PluginDir string
}

// pluginDir returns the effective plugin directory name.
func (g *Generator) pluginDir() string {
	if g.PluginDir != "" {
		return g.PluginDir
	}
	return DefaultPluginDir
}

// Files returns the relative paths Generate would write, in write order.
func (g *Generator) Files() []string {
	out := make([]string, 0, len(Manifest))
	for _, a := range Manifest {
		out = append(out, filepath.Join(g.pluginDir(), a.Name))
	}
	return out
}

// Generate writes the plugin directory and its artifacts, substituting
// version into the templates. Safe to call when the directory already
// exists; existing artifacts are overwritten. Returns the written paths.
func (g *Generator) Generate(version string) ([]string, error) {
	dir := filepath.Join(g.Dir, g.pluginDir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create plugin directory %s: %w", dir, err)
	}

	var written []string
	for _, a := range Manifest {
		data, err := assets.ReadFile("assets/" + a.Name)
		if err != nil {
			return written, fmt.Errorf("missing embedded asset %s: %w", a.Name, err)
		}
		data = bytes.ReplaceAll(data, []byte(versionToken), []byte(version))

		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, data, a.Mode); err != nil {
			return written, fmt.Errorf("cannot write %s: %w", path, err)
		}
		// WriteFile mode only applies on create; re-runs must restore the
		// executable bit on previously written files too.
		if err := os.Chmod(path, a.Mode); err != nil {
			return written, fmt.Errorf("cannot set mode on %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
