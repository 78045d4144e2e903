package main

import (
	"github.com/spf13/cobra"
)

func newLockCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "remove an installed key and re-encrypt the paths bound to it",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&keyName, "key-name", "k", "", "name of the installed key to remove, instead of the default key")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		return r.Lock(cmd.Context(), keyName)
	}

	return cmd
}
