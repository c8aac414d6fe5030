package main

import (
	"errors"
	"fmt"
	"strings"

	"Espuma/internal/calc/foam"
	"Espuma/internal/formulation"

	"github.com/spf13/cobra"
)

var errCalculation = errors.New("calculation rejected")

type calcOptions struct {
	volume string
	fator  string
	set    []string
}

func newCalcCmd() *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc <formulação>",
		Short: "Calcula as massas dos componentes",
		Example: `  espuma calc espumaAlexandrina --volume 1776 --fator 1
  espuma calc espumaBernardina --set volume=1776 --set fator=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := opts.inputs(cmd)
			if err != nil {
				return err
			}
			res, err := foam.Calculate(registry, foam.Input{Formulation: formulation.ID(args[0]), Inputs: inputs})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
			if !res.OK {
				return errCalculation
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.volume, "volume", "", "Volume do molde (cm³)")
	cmd.Flags().StringVar(&opts.fator, "fator", "", "Fator de expansão")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Valor de uma variável, nome=valor (repetível)")
	return cmd
}

// inputs merges --volume/--fator with --set pairs; --set wins.
func (o *calcOptions) inputs(cmd *cobra.Command) (map[string]string, error) {
	inputs := make(map[string]string)
	if cmd.Flags().Changed("volume") {
		inputs[formulation.VarVolume] = o.volume
	}
	if cmd.Flags().Changed("fator") {
		inputs[formulation.VarFator] = o.fator
	}
	for _, kv := range o.set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", kv)
		}
		inputs[strings.TrimSpace(name)] = value
	}
	return inputs, nil
}
