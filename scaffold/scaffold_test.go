package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}

	written, err := g.Generate("2.3.1")
	require.NoError(t, err)
	require.Len(t, written, 5)

	for _, name := range []string{"softaculous_main.py", "info.json", "index.html", "install.sh", "Dockerfile"} {
		_, err := os.Stat(filepath.Join(dir, "softaculous", name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	// No extra files beyond the manifest.
	entries, err := os.ReadDir(filepath.Join(dir, "softaculous"))
	require.NoError(t, err)
	assert.Len(t, entries, len(Manifest))
}

func TestGenerate_InfoJSONKeys(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}

	_, err := g.Generate("2.3.1")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "softaculous", "info.json"))
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal(data, &info))

	want := []string{"title", "name", "ps", "versions", "checks", "author", "home"}
	assert.Len(t, info, len(want))
	for _, key := range want {
		assert.Contains(t, info, key)
	}
	assert.Equal(t, "2.3.1", info["versions"])
	assert.Equal(t, "softaculous", info["name"])
}

func TestGenerate_ExecutableBits(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}

	_, err := g.Generate("1.0.0")
	require.NoError(t, err)

	for _, name := range []string{"softaculous_main.py", "install.sh"} {
		info, err := os.Stat(filepath.Join(dir, "softaculous", name))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o111, "%s should be executable", name)
	}

	info, err := os.Stat(filepath.Join(dir, "softaculous", "index.html"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&0o111, "index.html should not be executable")
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}

	_, err := g.Generate("1.0.0")
	require.NoError(t, err)

	first := readAll(t, filepath.Join(dir, "softaculous"))

	_, err = g.Generate("1.0.0")
	require.NoError(t, err)

	second := readAll(t, filepath.Join(dir, "softaculous"))
	assert.Equal(t, first, second, "re-running must produce byte-identical output")
}

func TestGenerate_RestoresExecutableBitOnRerun(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir}

	_, err := g.Generate("1.0.0")
	require.NoError(t, err)

	script := filepath.Join(dir, "softaculous", "install.sh")
	require.NoError(t, os.Chmod(script, 0o644))

	_, err = g.Generate("1.0.0")
	require.NoError(t, err)

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestGenerate_CustomPluginDir(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{Dir: dir, PluginDir: "myplugin"}

	written, err := g.Generate("1.0.0")
	require.NoError(t, err)
	for _, path := range written {
		assert.Contains(t, path, filepath.Join(dir, "myplugin"))
	}
}

func TestFiles_MatchesManifest(t *testing.T) {
	g := &Generator{Dir: "/ignored"}
	files := g.Files()
	require.Len(t, files, len(Manifest))
	assert.Equal(t, filepath.Join("softaculous", "softaculous_main.py"), files[0])
}

func readAll(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = string(data)
	}
	return out
}
