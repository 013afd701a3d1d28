// Package config loads, normalizes, and validates aurora's TOML
// configuration. Defaults are applied first, then values from the
// resolved config file are layered on top. All path fields are expanded
// (~ resolution) and made absolute before validation runs.
package config
