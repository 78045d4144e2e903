package main

import (
	"github.com/goabstract/gitcrypt/repostate"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen KEYFILE",
		Short: "generate a fresh key file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return repostate.Keygen(afero.NewOsFs(), args[0])
	}

	return cmd
}
