package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foundry.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeTemp: %v", err)
	}
	return path
}

func assertEqual(t *testing.T, name, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", name, got, want)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	yaml := `plugin: softaculous
log_file: build_plugin.log

image:
  repo: registry.example.com/panel/softaculous-plugin

git:
  remote: origin
  branch: main

release:
  tag_prefix: v
`
	path := writeTemp(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assertEqual(t, "plugin", cfg.Plugin, "softaculous")
	assertEqual(t, "log_file", cfg.LogFile, "build_plugin.log")
	assertEqual(t, "image.repo", cfg.Image.Repo, "registry.example.com/panel/softaculous-plugin")
	assertEqual(t, "git.remote", cfg.Git.Remote, "origin")
	assertEqual(t, "git.branch", cfg.Git.Branch, "main")
	assertEqual(t, "release.tag_prefix", cfg.Release.TagPrefix, "v")
}

func TestLoad_EmptyConfig(t *testing.T) {
	path := writeTemp(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("empty file should produce zero config, got %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "image: [unclosed")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("FOUNDRY_TEST_REPO", "private.example.com/plugin")
	path := writeTemp(t, "image:\n  repo: ${FOUNDRY_TEST_REPO}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertEqual(t, "image.repo", cfg.Image.Repo, "private.example.com/plugin")
}

func TestLoadIfExists_Absent(t *testing.T) {
	cfg, err := LoadIfExists(filepath.Join(t.TempDir(), "foundry.yaml"))
	if err != nil {
		t.Fatalf("LoadIfExists failed: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("absent file should produce zero config, got %+v", cfg)
	}
}
