// Package config loads the CLI configuration from layered sources:
// built-in defaults, an optional JSON file (-c/-config), environment
// variables, and command-line flags, in increasing order of precedence.
package config
