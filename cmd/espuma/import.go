package main

import (
	"fmt"
	"os"

	"Espuma/internal/calc/batch"
	"Espuma/internal/calc/importer"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <planilha.xlsx>",
		Short: "Calcula todas as linhas de uma planilha",
		Long: `Lê a primeira aba da planilha. A primeira linha é o cabeçalho: a primeira
coluna traz a formulação (id ou nome) e as demais o nome de cada variável.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			input, err := importer.Read(registry, f)
			if err != nil {
				return err
			}
			res, err := batch.Calculate(registry, input, 0)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range res.Items {
				fmt.Fprintf(out, "#%d ", item.Index+1)
				if item.Result == nil {
					fmt.Fprintln(out, errorStyle.Render(item.Error))
					continue
				}
				fmt.Fprintln(out, renderResult(*item.Result))
			}
			fmt.Fprintf(out, "%d itens, %d com erro\n", res.Count, res.Failed)
			if res.Failed > 0 {
				return errCalculation
			}
			return nil
		},
	}
}
