package cmd

import (
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/foundry/cli/render"
	"github.com/pithecene-io/foundry/iox"
	"github.com/pithecene-io/foundry/project"
	"github.com/pithecene-io/foundry/scaffold"
)

// ScaffoldResponse is the response for the scaffold command.
type ScaffoldResponse struct {
	Version         string   `json:"version"`
	BaselineCreated []string `json:"baseline_created,omitempty"`
	FilesWritten    []string `json:"files_written"`
}

// ScaffoldCommand returns the scaffold command: validate baseline state,
// read the version, and materialize the plugin tree. Purely local; it never
// invokes external tools.
func ScaffoldCommand() *cli.Command {
	return &cli.Command{
		Name:   "scaffold",
		Usage:  "Generate the plugin file tree without building or publishing",
		Flags:  ProjectFlags(),
		Action: scaffoldAction,
	}
}

func scaffoldAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}

	opts, err := resolveOptions(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}

	logger, closeLog, err := buildLogger(uuid.NewString(), opts.LogFile)
	if err != nil {
		return cli.Exit(err.Error(), exitUsageErr)
	}
	defer iox.DiscardErr(closeLog)

	dir := opts.Pipeline.Dir
	created, err := project.EnsureBaseline(dir)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	for _, path := range created {
		logger.Info("created baseline file", map[string]any{"path": path})
	}

	version, err := project.ReadVersion(dir)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}

	gen := &scaffold.Generator{Dir: dir, PluginDir: opts.Pipeline.PluginDir}
	written, err := gen.Generate(version)
	if err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	logger.Info("plugin scaffold generated", map[string]any{"version": version, "files": len(written)})

	return r.Render(ScaffoldResponse{
		Version:         version,
		BaselineCreated: created,
		FilesWritten:    written,
	})
}
