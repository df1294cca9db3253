// Package config loads xorkit configuration from local and global YAML files
// with precedence rules. It is internal; CLI code maps flags and files into
// command options.
package config
