package cmd

import (
	"github.com/indigo-web/mediatype/config"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mediatype",
		Short:         "Inspect, compare and negotiate media types",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newParseCmd(), newEqualCmd(), newNegotiateCmd())

	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
