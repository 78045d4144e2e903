package main

import (
	"fmt"
	"io"

	"github.com/goabstract/gitcrypt/repostate"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var encryptedOnly bool
	var fix bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "show the encryption state of every tracked path",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVarP(&encryptedOnly, "encrypted-only", "e", false, "only list paths bound to a key")
	cmd.Flags().BoolVarP(&fix, "fix", "f", false, "not supported: fixing .gitattributes inconsistencies is out of scope")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if fix {
			return newUsageError("--fix is not supported")
		}
		r, err := openRepo()
		if err != nil {
			return err
		}
		statuses, err := r.Status(cmd.Context(), encryptedOnly)
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), statuses)
		return nil
	}

	return cmd
}

func printStatus(out io.Writer, statuses []repostate.PathStatus) {
	for _, s := range statuses {
		state := "not encrypted"
		switch {
		case s.Bound && s.EncryptedOnDisk:
			state = "encrypted"
		case s.Bound && !s.EncryptedOnDisk:
			state = "encrypted (not yet checked out)"
		case !s.Bound && s.EncryptedOnDisk:
			state = "not bound, but looks encrypted on disk"
		}
		if !s.Bound {
			fmt.Fprintf(out, "%s: %s\n", state, s.Path)
			continue
		}
		keyLabel := s.KeyName
		if keyLabel == "" {
			keyLabel = "default"
		}
		fmt.Fprintf(out, "%s: %s (key: %s)\n", state, s.Path, keyLabel)
	}
}
