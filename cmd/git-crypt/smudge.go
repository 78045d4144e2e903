package main

import (
	"github.com/goabstract/gitcrypt/filter"
	"github.com/spf13/cobra"
)

func newSmudgeCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:    "smudge",
		Short:  "decrypt standard input (invoked by the host VCS as a filter driver)",
		Args:   cobra.NoArgs,
		Hidden: true,
	}
	cmd.Flags().StringVar(&keyName, "key-name", "", "name of the key this invocation is bound to")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kf, err := loadInstalledKeyFile(keyName)
		if err != nil {
			return err
		}
		return filter.Smudge(cmd.OutOrStdout(), cmd.InOrStdin(), kf)
	}

	return cmd
}
