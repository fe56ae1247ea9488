package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldur/arcula/bip44"
	"github.com/aldur/arcula/cli"
)

// resolveCmd represents the resolve command
var resolveCmd = cli.NewRunCommand("resolve <path>",
	"Resolve a derivation path to its node.",
	`Build the hierarchy described by the configuration file and print
the identifier and tag of the node at the given derivation path,
e.g. "m/44'/BTC/0/xpub/1". No key material is derived.`,
	resolveRunFunc)

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringP("config", "c", "config.toml", "Path to the wallet configuration file")
}

func resolveRunFunc(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("resolve requires exactly one derivation path")
		return
	}
	conf, logger := loadConfigAndLogger(cmd)

	master, err := bip44.NewTree(conf.AccountConfig())
	if err != nil {
		logger.Fatal("Invalid hierarchy configuration", "error", err)
	}
	node, err := bip44.Resolve(master, args[0])
	if err != nil {
		logger.Fatal("Path resolution failed", "path", args[0], "error", err)
	}

	fmt.Printf("id: %d\n", node.ID)
	if node.Tag != "" {
		fmt.Printf("tag: %s\n", node.Tag)
	}
	fmt.Printf("children: %d\n", len(node.Edges))
}
