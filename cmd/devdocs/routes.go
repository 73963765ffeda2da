package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/devdocs/internal/routing"
)

func newRoutesCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the site route table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asYAML {
				return writeRoutesYAML(cmd.OutOrStdout(), routing.Site)
			}
			return writeRoutes(cmd.OutOrStdout(), routing.Site)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the table as YAML")
	return cmd
}

func writeRoutes(w io.Writer, t *routing.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPATTERN\tKIND\tPAGE")
	for i, r := range t.Routes() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Pattern, r.Kind, r.Page)
	}
	return tw.Flush()
}

func writeRoutesYAML(w io.Writer, t *routing.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Routes()); err != nil {
		return err
	}
	return enc.Close()
}
