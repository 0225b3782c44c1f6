// Package config loads optional YAML configuration for struct-lint.
//
// The config file can set the should-be-packed name pattern, the artifact
// file extensions used for directory scanning, and the check toggles.
// Command-line flags override file values; an absent file yields defaults.
package config
