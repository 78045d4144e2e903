package main

import (
	"fmt"

	"github.com/goabstract/gitcrypt/filter"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:    "clean",
		Short:  "encrypt standard input (invoked by the host VCS as a filter driver)",
		Args:   cobra.NoArgs,
		Hidden: true,
	}
	cmd.Flags().StringVar(&keyName, "key-name", "", "name of the key this invocation is bound to")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kf, err := loadInstalledKeyFile(keyName)
		if err != nil {
			return err
		}
		entry, err := kf.Latest()
		if err != nil {
			return fmt.Errorf("clean: %w", err)
		}
		return filter.Clean(cmd.OutOrStdout(), cmd.InOrStdin(), entry)
	}

	return cmd
}
