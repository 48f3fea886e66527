// Package log provides structured, leveled logging for chronal.
//
// Package: log
// Title: chronal Structured Logging
// Description: A small structured logger with persistent context fields and
//              JSON, text, logfmt and console output. The date engine logs
//              cache misses and configuration reloads through it, the CLI
//              configures it from --verbose and the log.* config keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Console output via lipgloss, warn as default level
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "chronal",
//	})
//	logger.Debug("formatter cache miss", log.Zone("Europe/Berlin"), log.Locale("de"))
package log
