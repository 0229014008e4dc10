// Package cmd provides CLI commands for the foundry binary.
package cmd

import "github.com/urfave/cli/v2"

// Exit codes for the foundry binary.
const (
	exitSuccess  = 0
	exitFailure  = 1
	exitUsageErr = 2
)

// Shared flags.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// DirFlag selects the project directory.
	DirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Project directory",
		Value: ".",
	}

	// ConfigFlag points at an explicit config file. Without it, a
	// foundry.yaml in the project directory is used when present.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a foundry.yaml config file",
	}

	// PluginFlag overrides the scaffold directory name.
	PluginFlag = &cli.StringFlag{
		Name:  "plugin",
		Usage: "Plugin directory name under the project directory",
	}

	// LogFileFlag tees structured logs to a file.
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Tee structured logs to a file (overwritten per run)",
	}
)

// ProjectFlags returns the flags shared by commands that operate on a
// project directory.
func ProjectFlags() []cli.Flag {
	return []cli.Flag{
		DirFlag,
		ConfigFlag,
		PluginFlag,
		LogFileFlag,
		FormatFlag,
	}
}
