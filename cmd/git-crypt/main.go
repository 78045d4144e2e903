// Command git-crypt is the filter driver and lifecycle CLI for
// transparent file encryption in a git working tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "git-crypt",
		Short:         "transparent file encryption for git",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newKeygenCmd())
	cmd.AddCommand(newExportKeyCmd())
	cmd.AddCommand(newUnlockCmd())
	cmd.AddCommand(newLockCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newSmudgeCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newVersionCmd())

	// a wrong argument count is a usage error (exit code 2), not an
	// operation error
	for _, sub := range cmd.Commands() {
		validate := sub.Args
		if validate == nil {
			continue
		}
		sub.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		}
	}

	return cmd
}
