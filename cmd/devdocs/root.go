package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devdocs/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "devdocs",
		Short: "Server-rendered developer guides",
		Long: `devdocs serves a catalogue of Git, Laravel, React and DevOps guides.
Without a subcommand it starts the HTTP server.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(newServeCmd(), newRoutesCmd(), newCheckCmd())
	return root
}
