package cmd

import (
	"fmt"
	"io"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/charset"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var ranges bool

	parseCmd := &cobra.Command{
		Use:   "parse value...",
		Short: "Shows the components of media types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}

				if err := runParse(cmd.OutOrStdout(), arg, ranges); err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
			}

			return nil
		},
	}

	parseCmd.Flags().BoolVarP(&ranges, "range", "r", false, "allow wildcards")

	return parseCmd
}

func runParse(out io.Writer, value string, ranges bool) error {
	parse := mediatype.Parse
	if ranges {
		parse = mediatype.ParseRange
	}

	mt, err := parse(value)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "value   = %s\n", mt)
	fmt.Fprintf(out, "type    = %s\n", mt.Type())
	fmt.Fprintf(out, "subtype = %s\n", mt.Subtype())
	if suffix, ok := mt.Suffix(); ok {
		fmt.Fprintf(out, "suffix  = %s\n", suffix)
	}

	for name, value := range mt.AllParams() {
		fmt.Fprintf(out, "param   %s = %s\n", name, value)
	}

	if name, ok := mediatype.DefaultCharset(mt); ok {
		if canonical, err := charset.Canonical(name); err == nil {
			name = canonical
		}

		fmt.Fprintf(out, "charset = %s\n", name)
	}

	return nil
}
