package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the "shelf" root. Running it without a subcommand starts
// the menu, same as "shelf run".
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Interactive book inventory with a per-run addition log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("log-dir", "", "directory for the addition log (env SHELF_LOG_DIR)")
	pf.String("log-level", "", "diagnostic log level: debug|info|warn|error (env SHELF_LOG_LEVEL)")
	pf.String("log-format", "", "diagnostic log format: text|json (env SHELF_LOG_FORMAT)")
	pf.String("list-format", "", "how to print the inventory: table|yaml (env SHELF_LIST_FORMAT)")

	run := newRunCmd()
	root.AddCommand(run)
	root.Args = cobra.NoArgs
	root.RunE = run.RunE
	return root
}

func execute() error {
	return newRootCmd().Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
