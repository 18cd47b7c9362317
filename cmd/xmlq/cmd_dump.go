package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/xmldom"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the element tree of a document",
		Long: `Print the element tree of a document to stdout.

If a file is provided it is read in full; otherwise the document is read
from stdin. The output is a diagnostic rendering, not a stable format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			root, err := parseInput(data, asHTML)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Fprint(os.Stdout, xmldom.Dump(root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "treat the input as HTML")
	return cmd
}
