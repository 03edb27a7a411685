// Package config loads application settings from environment variables
// (prefixed ASSETS_) and an optional config.yaml, applies defaults, and
// validates the result before any component is built from it.
package config
