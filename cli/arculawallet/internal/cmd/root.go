// Package cmd implements the CLI commands for the Arcula
// hierarchical deterministic wallet.
package cmd

import (
	"github.com/aldur/arcula/cli"
)

// RootCmd represents the base "arculawallet" command when called
// without any subcommands.
var RootCmd = cli.NewRootCommand("arculawallet",
	"Arcula hierarchical deterministic wallet in Go",
	`A secure, hierarchical deterministic wallet.

Derives a BIP44-shaped hierarchy of signing keys from a single seed
and certifies every key with an offline cold-storage authority.`)
