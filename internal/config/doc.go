// Package config handles configuration loading and merging for pco.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --theme, --no-color, --verbose)
//  2. Environment variables (PCO_FORMAT, PCO_THEME, PCO_NO_COLOR, NO_COLOR, PCO_DEBUG)
//  3. YAML config file (.pco.yaml at the project root, or --config)
//  4. Hardcoded defaults
//
// # Project Settings
//
// Only the config file carries project settings:
//
//   - version_file: path of the file holding the project version (default VERSION)
//   - exclude: glob patterns of files never checked
//   - license, copyright: required header text, one entry per line
//   - allowed_types: accepted values of the File Type header field
//
// # Environment Variables
//
//   - PCO_NO_COLOR or NO_COLOR: disable colors
//   - PCO_FORMAT, PCO_THEME: output format and theme
//   - PCO_DEBUG: set to any non-empty value to enable debug logging
package config
