// Package types holds shared constants for the foundry tool.
package types

// Version is the canonical foundry tool version.
// This is the version of the tool itself, not of the plugin it builds;
// the plugin version lives in the project's VERSION file.
const Version = "0.2.0"
