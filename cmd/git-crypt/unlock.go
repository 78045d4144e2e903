package main

import (
	"github.com/spf13/cobra"
)

func newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock [KEYFILE...]",
		Short: "install key files and decrypt the paths bound to them",
		Args:  cobra.ArbitraryArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		exePath, err := thisExecutable()
		if err != nil {
			return err
		}
		return r.Unlock(cmd.Context(), exePath, args)
	}

	return cmd
}
