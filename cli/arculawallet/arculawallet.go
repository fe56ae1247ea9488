// Executable Arcula hierarchical deterministic wallet. See README
// for usage instructions.
package main

import (
	"github.com/aldur/arcula/cli"
	"github.com/aldur/arcula/cli/arculawallet/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
