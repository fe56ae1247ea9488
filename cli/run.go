package cli

import (
	"github.com/spf13/cobra"
)

// A runCommand is used to create one of a wallet executable's
// operational subcommands.
type runCommand struct {
	use     string
	short   string
	long    string
	runFunc func(cmd *cobra.Command, args []string)
}

var _ cobraCommand = (*runCommand)(nil)

// NewRunCommand constructs a new operational command with the given
// use, short and long descriptions and the runFunc implementing it.
func NewRunCommand(use, short, long string, runFunc func(cmd *cobra.Command, args []string)) *cobra.Command {
	runCmd := &runCommand{
		use:     use,
		short:   short,
		long:    long,
		runFunc: runFunc,
	}
	return runCmd.Build()
}

// Build constructs the cobra.Command according to the
// runCommand's settings.
func (runCmd *runCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   runCmd.use,
		Short: runCmd.short,
		Long:  runCmd.long,
		Run:   runCmd.runFunc,
	}
	return &cmd
}
