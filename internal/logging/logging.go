// Package logging provides the ambient leveled logging used across the
// decoder, index, and geocoder packages.
//
// This is deliberately thin: no correlation IDs, no structured/YAML-driven
// configuration. Those belong to the embedded-server subsystem this module
// does not implement. It exists only so decode/index/geocode milestones and
// skipped-record warnings are observable, the way sigolo is used in
// soq's util package.
package logging

import "github.com/hauke96/sigolo/v2"

// SetLevel sets the minimum log level for the whole process. Valid values
// are sigolo.LOG_TRACE, sigolo.LOG_DEBUG, sigolo.LOG_INFO, sigolo.LOG_WARN,
// and sigolo.LOG_ERROR.
func SetLevel(level sigolo.Level) {
	sigolo.SetDefaultLogLevel(level)
}

// Debugf logs a debug-level message, e.g. per-record decode detail.
func Debugf(format string, args ...interface{}) {
	sigolo.Debugf(format, args...)
}

// Infof logs an info-level message, e.g. "opened shapefile with N records".
func Infof(format string, args ...interface{}) {
	sigolo.Infof(format, args...)
}

// Errorf logs an error-level message for a non-fatal failure, e.g. a
// malformed record that was skipped rather than propagated.
func Errorf(format string, args ...interface{}) {
	sigolo.Errorf(format, args...)
}
