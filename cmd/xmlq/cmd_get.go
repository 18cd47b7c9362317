package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/xmldom"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var asHTML bool
	var firstOnly bool

	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Resolve a dot-separated element path",
		Long: `Resolve a dot-separated element path against a document.

The path is a sequence of literal element names, e.g. "book.chapter.title".
For every match the element's text is printed, or a one-line summary if the
element has no text. With --first only the first match is resolved.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := readInput(args[1:])
			if err != nil {
				return err
			}
			root, err := parseInput(data, asHTML)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			var matches []*xmldom.Element
			if firstOnly {
				first, ok := root.ElementAtPath(path)
				if ok {
					matches = append(matches, first)
				}
			} else {
				matches = root.ElementsAtPath(path)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no element at path %q", path)
			}
			for _, m := range matches {
				printMatch(m)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "treat the input as HTML")
	cmd.Flags().BoolVar(&firstOnly, "first", false, "resolve to the first match only")
	return cmd
}

func printMatch(e *xmldom.Element) {
	if text := e.Text(); text != "" {
		fmt.Fprintln(os.Stdout, text)
		return
	}
	fmt.Fprintf(os.Stdout, "<%s> attributes=%v children=%d\n",
		e.Name(), e.Attributes(), e.ChildCount())
}
