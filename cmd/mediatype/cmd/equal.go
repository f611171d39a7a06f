package cmd

import (
	"errors"
	"fmt"

	"github.com/indigo-web/mediatype"
	"github.com/spf13/cobra"
)

var ErrNotEqual = errors.New("media types differ")

func newEqualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal a b",
		Short: "Compares two media types, failing if they differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := mediatype.ParseRange(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}

			if !a.EqualString(args[1]) {
				return ErrNotEqual
			}

			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}
}
