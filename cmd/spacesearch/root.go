package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "spacesearch",
		Short: "spacesearch runs state-space searches over text mazes",
		Long: `spacesearch solves a maze with breadth-first, depth-first, greedy or A* search,
with or without route tracking and duplicate detection.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}
