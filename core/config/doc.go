// Package config loads chronal settings from TOML or YAML files.
//
// Package: config
// Title: chronal Configuration
// Description: A file backed key space with dot notation access
//              ("cache.patterns"), built-in defaults, CHRONAL_ prefixed
//              environment overrides, rule based validation and fsnotify
//              driven hot reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: chronal keys, typed Settings view, fsnotify watcher
//
// Example file (chronal.toml):
//
//	locale   = "de-DE"
//	timezone = "Europe/Berlin"
//
//	[cache]
//	formatters = 128
//	patterns   = 512
//
//	[log]
//	level  = "debug"
//	format = "logfmt"
//
// Usage:
//
//	cfg, err := config.Load("chronal.toml")
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(config.DefaultRules()).Err(); err != nil {
//		return err
//	}
//	settings := cfg.Settings()
package config
