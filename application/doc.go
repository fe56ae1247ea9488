// Package application provides the common building blocks of the
// wallet command-line executables: the TOML configuration describing
// the hierarchy to generate, seed loading, and logging.
package application
