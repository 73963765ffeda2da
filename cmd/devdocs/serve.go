package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devdocs/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `serve reads its configuration from DEVDOCS_* environment variables,
loads the embedded articles and listens until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := app.New(cmd.Context())
	if err != nil {
		return err
	}
	return a.Run()
}
