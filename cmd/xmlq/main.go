package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/xmldom"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xmlq",
		Short: "Inspect and query XML and HTML documents",
	}

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads the document from the single optional file argument, or
// from stdin if no argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func parseInput(data []byte, asHTML bool) (*xmldom.Element, error) {
	if asHTML {
		return xmldom.ParseHTML(data)
	}
	return xmldom.Parse(data)
}
