package cmd

import (
	"errors"
	"fmt"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/accept"
	"github.com/spf13/cobra"
)

var ErrNotAcceptable = errors.New("none of the offers is acceptable")

func newNegotiateCmd() *cobra.Command {
	var header string

	negotiateCmd := &cobra.Command{
		Use:   "negotiate offer...",
		Short: "Picks the offer preferred by the Accept header",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := accept.Parse(header, cfg)
			if err != nil {
				return err
			}

			offers := make([]mediatype.MediaType, len(args))
			for i, arg := range args {
				if offers[i], err = mediatype.Parse(arg); err != nil {
					return fmt.Errorf("offer %q: %w", arg, err)
				}
			}

			best, ok := accept.Negotiate(ranges, offers...)
			if !ok {
				return ErrNotAcceptable
			}

			quality, found := accept.Quality(ranges, best)
			if !found {
				quality = cfg.Accept.DefaultQuality
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (q=%s)\n", best, formatQuality(quality))
			return nil
		},
	}

	negotiateCmd.Flags().StringVarP(&header, "accept", "a", "", "value of the Accept header")

	return negotiateCmd
}

func formatQuality(q uint16) string {
	if q == 1000 {
		return "1"
	}

	return fmt.Sprintf("0.%03d", q)
}
