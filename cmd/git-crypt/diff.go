package main

import (
	"github.com/goabstract/gitcrypt/filter"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:    "diff PATH",
		Short:  "decrypt a named file for display (invoked by the host VCS as a textconv driver)",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
	}
	cmd.Flags().StringVar(&keyName, "key-name", "", "name of the key this invocation is bound to")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kf, err := loadInstalledKeyFile(keyName)
		if err != nil {
			return err
		}
		return filter.Diff(cmd.OutOrStdout(), args[0], kf)
	}

	return cmd
}
