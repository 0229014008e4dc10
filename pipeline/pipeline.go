// Package pipeline implements the plugin build and release pipeline.
//
// A run is a single linear chain: validate baseline state, read the release
// version, scaffold the plugin tree, build and publish the container image,
// commit and push the working tree, create the release. Steps execute
// strictly in order; the first failure aborts the run and no later step is
// invoked. There is no retry and no resumption — re-running from the top is
// the only recovery path, which each step's idempotence makes safe.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/pithecene-io/foundry/execx"
	"github.com/pithecene-io/foundry/log"
	"github.com/pithecene-io/foundry/metrics"
	"github.com/pithecene-io/foundry/project"
	"github.com/pithecene-io/foundry/scaffold"
)

// Defaults reproduce the zero-configuration behavior.
const (
	DefaultImageRepo = "softaculous-plugin"
	DefaultTagPrefix = "v"
)

// Config holds pipeline settings. Zero values select the defaults.
type Config struct {
	// Dir is the project directory. Empty means the current directory.
	Dir string
	// PluginDir is the scaffold directory name under Dir.
	PluginDir string
	// ImageRepo is the container image repository.
	ImageRepo string
	// Remote and Branch select the git push target; both empty pushes to
	// the configured upstream.
	Remote string
	Branch string
	// TagPrefix is prepended to the version for the release tag.
	TagPrefix string
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.PluginDir == "" {
		c.PluginDir = scaffold.DefaultPluginDir
	}
	if c.ImageRepo == "" {
		c.ImageRepo = DefaultImageRepo
	}
	if c.TagPrefix == "" {
		c.TagPrefix = DefaultTagPrefix
	}
	return c
}

// Summary reports what a completed run did.
type Summary struct {
	Version         string           `json:"version"`
	BaselineCreated []string         `json:"baseline_created,omitempty"`
	FilesWritten    []string         `json:"files_written"`
	Metrics         metrics.Snapshot `json:"metrics"`
}

// Pipeline sequences the release steps. Logger and Runner are injected at
// construction; the pipeline holds no ambient global state.
type Pipeline struct {
	cfg     Config
	gen     *scaffold.Generator
	image   *ImageBuilder
	changes *ChangePublisher
	release *ReleasePublisher
	logger  *log.Logger
	metrics *metrics.Collector
}

// New creates a Pipeline. A nil collector disables metrics.
func New(cfg Config, runner execx.Runner, logger *log.Logger, collector *metrics.Collector) *Pipeline {
	cfg = cfg.withDefaults()
	return &Pipeline{
		cfg: cfg,
		gen: &scaffold.Generator{Dir: cfg.Dir, PluginDir: cfg.PluginDir},
		image: &ImageBuilder{
			Repo:       cfg.ImageRepo,
			Dockerfile: filepath.Join(cfg.PluginDir, "Dockerfile"),
			Runner:     runner,
			Log:        logger,
			Metrics:    collector,
		},
		changes: &ChangePublisher{
			Remote:  cfg.Remote,
			Branch:  cfg.Branch,
			Runner:  runner,
			Log:     logger,
			Metrics: collector,
		},
		release: &ReleasePublisher{
			TagPrefix: cfg.TagPrefix,
			Runner:    runner,
			Log:       logger,
			Metrics:   collector,
		},
		logger:  logger,
		metrics: collector,
	}
}

// Run executes the full pipeline. On failure the error is logged and
// returned; the caller decides process exit.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	p.metrics.IncRunStarted()

	summary, err := p.run(ctx)
	if err != nil {
		p.metrics.IncRunFailed()
		p.logger.Error("build and release process failed", map[string]any{"error": err.Error()})
		return nil, err
	}

	p.metrics.IncRunCompleted()
	summary.Metrics = p.metrics.Snapshot()
	p.logger.Info("build and release process completed", map[string]any{"version": summary.Version})
	return summary, nil
}

func (p *Pipeline) run(ctx context.Context) (*Summary, error) {
	created, err := project.EnsureBaseline(p.cfg.Dir)
	if err != nil {
		return nil, err
	}
	for _, path := range created {
		p.logger.Info("created baseline file", map[string]any{"path": path})
	}
	p.metrics.AddFilesWritten(len(created))
	p.metrics.IncStepCompleted()

	version, err := project.ReadVersion(p.cfg.Dir)
	if err != nil {
		return nil, err
	}
	p.logger.Info("current version", map[string]any{"version": version})
	p.metrics.IncStepCompleted()

	written, err := p.gen.Generate(version)
	if err != nil {
		return nil, err
	}
	p.logger.Info("plugin scaffold generated", map[string]any{"files": len(written)})
	p.metrics.AddFilesWritten(len(written))
	p.metrics.IncStepCompleted()

	if err := p.image.BuildAndPublish(ctx, version); err != nil {
		return nil, err
	}
	p.logger.Info("image built and pushed", map[string]any{"tag": p.cfg.ImageRepo + ":" + version})
	p.metrics.IncStepCompleted()

	if err := p.changes.CommitAndPush(ctx, version); err != nil {
		return nil, err
	}
	p.logger.Info("changes committed and pushed", map[string]any{"version": version})
	p.metrics.IncStepCompleted()

	if err := p.release.CreateRelease(ctx, version); err != nil {
		return nil, err
	}
	p.logger.Info("release created", map[string]any{"tag": p.cfg.TagPrefix + version})
	p.metrics.IncStepCompleted()

	return &Summary{
		Version:         version,
		BaselineCreated: created,
		FilesWritten:    written,
	}, nil
}

// Plan returns the external commands Run would invoke for version, in order.
// It performs no side effects.
func (p *Pipeline) Plan(version string) [][]string {
	var plan [][]string
	plan = append(plan, p.image.commands(version)...)
	plan = append(plan, p.changes.commands(version)...)
	plan = append(plan, p.release.commands(version)...)
	return plan
}

// Files returns the relative scaffold paths Run would write.
func (p *Pipeline) Files() []string {
	return p.gen.Files()
}
