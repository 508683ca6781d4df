// Package logging configures menucli's structured logger.
//
// menucli is a one-shot CLI, not a daemon, so unlike the file-rotating
// loggers common in long-running macOS automation tools there is no log
// file to rotate: every invocation logs to stderr only, at a level selected
// by the --verbose flag, so stdout stays reserved for formatted command
// output.
package logging
