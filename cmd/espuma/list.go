package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista as formulações disponíveis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range registry.List() {
				def, _ := registry.Get(e.ID)
				fmt.Fprintf(out, "%s\t%s\n", titleStyle.Render(string(e.ID)), e.Name)
				for _, v := range def.Variables {
					fmt.Fprintf(out, "  --set %s=<%s>\n", v, def.Label(v))
				}
			}
			return nil
		},
	}
}
