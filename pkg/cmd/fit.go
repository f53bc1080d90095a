package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/stochmodels/pkg/stochmodels"
)

// go run ./cmd/stochmodels fit --input=series.txt --model=ou
var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "fit a stochastic model to a data series by maximum likelihood",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		modelName, err := cmd.Flags().GetString("model")
		if err != nil {
			return err
		}

		series, err := readSeries(input)
		if err != nil {
			return err
		}

		writer := table.NewWriter()
		writer.SetOutputMirror(os.Stdout)
		writer.AppendHeader(table.Row{"Parameter", "Estimate"})

		switch modelName {
		case "ou":
			params, components, err := stochmodels.OrnsteinUhlenbeckMaximumLikelihood(series)
			if err != nil {
				return err
			}
			writer.AppendRows([]table.Row{
				{"mu", params.Mu},
				{"alpha", params.Alpha},
				{"sigma", params.Sigma},
				{"observations", components.NObs},
			})

		case "gl":
			params, components, err := stochmodels.GeneralLinearMaximumLikelihood(series)
			if err != nil {
				return err
			}
			writer.AppendRows([]table.Row{
				{"mu", params.Mu},
				{"sigma", params.Sigma},
				{"observations", components.NObs},
			})

		default:
			return fmt.Errorf("unknown model %q, expected ou or gl", modelName)
		}

		writer.Render()
		return nil
	},
}

func init() {
	fitCmd.Flags().String("input", "-", "series file with one sample per line, - for stdin")
	fitCmd.Flags().String("model", "ou", "model to fit: ou or gl")

	RootCmd.AddCommand(fitCmd)
}
