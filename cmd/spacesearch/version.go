package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacesearch"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of spacesearch",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spacesearch version %s\n", spacesearch.Version)
		},
	}
}
