package cmd

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/foundry/cli/render"
	"github.com/pithecene-io/foundry/execx"
	"github.com/pithecene-io/foundry/iox"
	"github.com/pithecene-io/foundry/log"
	"github.com/pithecene-io/foundry/metrics"
	"github.com/pithecene-io/foundry/pipeline"
	"github.com/pithecene-io/foundry/project"
)

// PlanResponse is the response for release --dry-run.
type PlanResponse struct {
	Version  string   `json:"version"`
	Files    []string `json:"files"`
	Commands []string `json:"commands"`
}

// ReleaseCommand returns the release command, the only command that drives
// external tools.
func ReleaseCommand() *cli.Command {
	return &cli.Command{
		Name:  "release",
		Usage: "Run the full build and release pipeline",
		Flags: append(ProjectFlags(),
			&cli.StringFlag{
				Name:  "image-repo",
				Usage: "Container image repository (tag is repo:version)",
			},
			&cli.StringFlag{
				Name:  "remote",
				Usage: "Git remote to push to",
			},
			&cli.StringFlag{
				Name:  "branch",
				Usage: "Git branch to push to (requires --remote)",
			},
			&cli.StringFlag{
				Name:  "tag-prefix",
				Usage: "Prefix for the release tag",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the command plan without executing anything",
			},
		),
		Action: releaseAction,
	}
}

func releaseAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}

	opts, err := resolveOptions(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}

	runID := uuid.NewString()

	// Dry-run renders the plan with zero side effects, so the log file
	// must not be opened: buildLogger truncates it.
	if c.Bool("dry-run") {
		p := pipeline.New(opts.Pipeline, nil, log.NewLogger(runID), nil)
		return renderPlan(r, p, opts.Pipeline.Dir)
	}

	logger, closeLog, err := buildLogger(runID, opts.LogFile)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}
	defer iox.DiscardErr(closeLog)

	collector := metrics.NewCollector(runID, opts.Pipeline.ImageRepo)
	runner := &execx.ExecRunner{Dir: opts.Pipeline.Dir}
	p := pipeline.New(opts.Pipeline, runner, logger, collector)

	// External commands block until exit; Ctrl-C is the only interruption.
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := p.Run(ctx)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	return r.Render(summary)
}

// renderPlan renders what a run would do without side effects. The version
// shown is the persisted one when present, otherwise the default that
// validation would write.
func renderPlan(r *render.Renderer, p *pipeline.Pipeline, dir string) error {
	version, err := project.ReadVersion(dir)
	if err != nil {
		version = project.DefaultVersion
	}

	commands := make([]string, 0, 6)
	for _, argv := range p.Plan(version) {
		commands = append(commands, strings.Join(argv, " "))
	}

	return r.Render(PlanResponse{
		Version:  version,
		Files:    p.Files(),
		Commands: commands,
	})
}

// buildLogger creates the run logger, teeing to logFile when set. The
// returned close function is a no-op for the stderr-only logger.
func buildLogger(runID, logFile string) (*log.Logger, func() error, error) {
	if logFile == "" {
		return log.NewLogger(runID), func() error { return nil }, nil
	}
	return log.NewFileLogger(runID, logFile)
}
