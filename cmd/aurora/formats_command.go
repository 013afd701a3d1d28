package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aurora/internal/export"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List available output formats",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := export.NewRegistry()
			rows := make([][]string, 0, 4)
			for _, format := range registry.Available() {
				exporter, ok := registry.Lookup(format)
				if !ok {
					continue
				}
				rows = append(rows, []string{
					format.String(),
					format.Extension(),
					exporter.Description(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Format", "Extension", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
