package cmd

import (
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/foundry/cli/config"
	"github.com/pithecene-io/foundry/pipeline"
)

// defaultConfigName is the implicit config file looked up in the project
// directory when --config is not given.
const defaultConfigName = "foundry.yaml"

// resolvedOptions is the merge of config file values and CLI flags.
// Flags always win over config values; built-in defaults apply last,
// inside pipeline.Config.
type resolvedOptions struct {
	Pipeline pipeline.Config
	LogFile  string
}

// resolveOptions loads the config file (explicit or implicit) and overlays
// CLI flags on top of it.
func resolveOptions(c *cli.Context) (resolvedOptions, error) {
	dir := c.String("dir")

	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadIfExists(filepath.Join(dir, defaultConfigName))
	}
	if err != nil {
		return resolvedOptions{}, err
	}

	pick := func(flag, fromConfig string) string {
		if flag != "" {
			return flag
		}
		return fromConfig
	}

	return resolvedOptions{
		Pipeline: pipeline.Config{
			Dir:       dir,
			PluginDir: pick(c.String("plugin"), cfg.Plugin),
			ImageRepo: pick(c.String("image-repo"), cfg.Image.Repo),
			Remote:    pick(c.String("remote"), cfg.Git.Remote),
			Branch:    pick(c.String("branch"), cfg.Git.Branch),
			TagPrefix: pick(c.String("tag-prefix"), cfg.Release.TagPrefix),
		},
		LogFile: pick(c.String("log-file"), cfg.LogFile),
	}, nil
}
