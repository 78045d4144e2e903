package main

import (
	"github.com/spf13/cobra"
)

func newExportKeyCmd() *cobra.Command {
	var keyName string

	cmd := &cobra.Command{
		Use:   "export-key KEYFILE",
		Short: "write the installed key file to KEYFILE",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&keyName, "key-name", "k", "", "name of the installed key to export, instead of the default key")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return err
		}
		return r.ExportKey(keyName, args[0])
	}

	return cmd
}
