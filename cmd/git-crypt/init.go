package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "generate a key and configure the filter driver for this repository",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&keyName, "key-name", "k", "", "name of the key to generate, instead of the default key")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runInit(cmd.Context(), keyName)
	}

	return cmd
}

func runInit(ctx context.Context, keyName string) error {
	r, err := openRepo()
	if err != nil {
		return err
	}
	exePath, err := thisExecutable()
	if err != nil {
		return err
	}
	return r.Init(ctx, keyName, exePath)
}
