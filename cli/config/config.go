package config

// Config represents a foundry.yaml configuration file.
// All values are optional and act as defaults for foundry release flags.
// CLI flags always override config values; an absent file means the
// zero-configuration defaults apply.
type Config struct {
	// Plugin is the scaffold directory name under the project directory.
	Plugin string `yaml:"plugin"`
	// LogFile tees structured log output to a file, overwritten per run.
	LogFile string `yaml:"log_file"`

	Image   ImageConfig   `yaml:"image"`
	Git     GitConfig     `yaml:"git"`
	Release ReleaseConfig `yaml:"release"`
}

// ImageConfig holds container image defaults from the config file.
type ImageConfig struct {
	Repo string `yaml:"repo"`
}

// GitConfig holds version-control defaults from the config file.
type GitConfig struct {
	Remote string `yaml:"remote"`
	Branch string `yaml:"branch"`
}

// ReleaseConfig holds release-creation defaults from the config file.
type ReleaseConfig struct {
	TagPrefix string `yaml:"tag_prefix"`
}
