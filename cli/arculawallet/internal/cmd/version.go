package cmd

import (
	"github.com/aldur/arcula/cli"
)

// versionCmd represents the version command
var versionCmd = cli.NewVersionCommand("arculawallet")

func init() {
	RootCmd.AddCommand(versionCmd)
}
