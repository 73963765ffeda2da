package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devdocs/internal/app"
	"github.com/MrSnakeDoc/devdocs/internal/catalog"
	"github.com/MrSnakeDoc/devdocs/internal/content"
	"github.com/MrSnakeDoc/devdocs/internal/routing"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify articles, routes and the category registry agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := content.LoadEmbedded()
			if err != nil {
				return fmt.Errorf("load articles: %w", err)
			}
			if err := app.Check(routing.Site, catalog.Default, lib); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d routes, %d articles, %d categories\n",
				len(routing.Site.Routes()), lib.Len(), catalog.Default.Len())
			return nil
		},
	}
}
