// Package log provides structured logging for chronos.
//
// Package: log
// Title: chronos Structured Logging
// Description: A small structured logger with levels, persistent fields,
//              correlation ids and JSON, text and logfmt output. Errors from
//              core/error are expanded into their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-19 v0.2.0: Dropped async buffering, audit level and console colors
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//	}).WithName("timex")
//
//	logger.Debug("zone loaded", log.Fields{"zone": "Europe/Berlin"})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("month")
//	defer timer.Stop()
package log
