package pipeline

import (
	"context"
	"strings"

	"github.com/pithecene-io/foundry/execx"
	"github.com/pithecene-io/foundry/log"
	"github.com/pithecene-io/foundry/metrics"
)

// ImageBuilder builds and publishes the plugin container image.
type ImageBuilder struct {
	// Repo is the image repository; the tag is Repo:version.
	Repo string
	// Dockerfile is the Dockerfile path relative to the project directory.
	Dockerfile string
	Runner     execx.Runner
	Log        *log.Logger
	Metrics    *metrics.Collector
}

func (b *ImageBuilder) commands(version string) [][]string {
	tag := b.Repo + ":" + version
	return [][]string{
		{"docker", "build", "-t", tag, "-f", b.Dockerfile, "."},
		{"docker", "push", tag},
	}
}

// BuildAndPublish builds the image tagged with version, then pushes it.
// The first non-zero exit aborts; the push never runs after a failed build.
func (b *ImageBuilder) BuildAndPublish(ctx context.Context, version string) error {
	for _, argv := range b.commands(version) {
		if err := runLogged(ctx, b.Runner, b.Log, b.Metrics, argv); err != nil {
			return err
		}
	}
	return nil
}

// ChangePublisher commits and pushes the generated tree.
type ChangePublisher struct {
	// Remote and Branch select the push target. Both empty means a plain
	// `git push` to the configured upstream.
	Remote  string
	Branch  string
	Runner  execx.Runner
	Log     *log.Logger
	Metrics *metrics.Collector
}

func (p *ChangePublisher) commands(version string) [][]string {
	push := []string{"git", "push"}
	if p.Remote != "" {
		push = append(push, p.Remote)
		if p.Branch != "" {
			push = append(push, p.Branch)
		}
	}
	return [][]string{
		{"git", "add", "."},
		{"git", "commit", "-m", "Build and release version " + version},
		push,
	}
}

// CommitAndPush stages all working-tree changes, commits with a message
// embedding version, and pushes. Any sub-step failing aborts; no rollback of
// already-staged or committed state is attempted.
func (p *ChangePublisher) CommitAndPush(ctx context.Context, version string) error {
	for _, argv := range p.commands(version) {
		if err := runLogged(ctx, p.Runner, p.Log, p.Metrics, argv); err != nil {
			return err
		}
	}
	return nil
}

// ReleasePublisher creates a tagged release for the version.
type ReleasePublisher struct {
	// TagPrefix is prepended to the version when forming the release tag.
	TagPrefix string
	Runner    execx.Runner
	Log       *log.Logger
	Metrics   *metrics.Collector
}

func (r *ReleasePublisher) commands(version string) [][]string {
	tag := r.TagPrefix + version
	return [][]string{
		{"gh", "release", "create", tag,
			"--title", "Release " + tag,
			"--notes", "Release version " + version},
	}
}

// CreateRelease invokes the release tool with a tag and title derived from
// version. Failure is fatal.
func (r *ReleasePublisher) CreateRelease(ctx context.Context, version string) error {
	for _, argv := range r.commands(version) {
		if err := runLogged(ctx, r.Runner, r.Log, r.Metrics, argv); err != nil {
			return err
		}
	}
	return nil
}

// runLogged executes one external command, logging its argv and captured
// output, and feeding the command counters.
func runLogged(ctx context.Context, runner execx.Runner, logger *log.Logger, collector *metrics.Collector, argv []string) error {
	joined := strings.Join(argv, " ")
	collector.IncCommandRun()
	logger.Info("running command", map[string]any{"command": joined})

	res, err := runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		collector.IncCommandFailure()
		logger.Error("command failed", map[string]any{
			"command":   joined,
			"exit_code": res.ExitCode,
			"stderr":    res.Stderr,
		})
		return err
	}

	logger.Info("command completed", map[string]any{
		"command": joined,
		"stdout":  res.Stdout,
		"stderr":  res.Stderr,
	})
	return nil
}
