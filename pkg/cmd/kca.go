package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c9s/stochmodels/pkg/kalman"
	"github.com/c9s/stochmodels/pkg/stochmodels"
)

// go run ./cmd/stochmodels kca --input=series.txt --observation=10.3
var kcaCmd = &cobra.Command{
	Use:   "kca",
	Short: "initialise the kinetic components filter and apply update steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		h, err := cmd.Flags().GetFloat64("h")
		if err != nil {
			return err
		}
		q, err := cmd.Flags().GetFloat64("q")
		if err != nil {
			return err
		}
		observations, err := cmd.Flags().GetFloat64Slice("observation")
		if err != nil {
			return err
		}
		innovationSigma, err := cmd.Flags().GetFloat64("innovation-sigma")
		if err != nil {
			return err
		}

		series, err := readSeries(input)
		if err != nil {
			return err
		}

		dimensions, err := kalman.MarshalSystemDimensions(kalman.DefaultSystemDimensions())
		if err != nil {
			return err
		}

		state, err := stochmodels.GetInitializedKCAState(series, h, q, dimensions)
		if err != nil {
			return err
		}

		for _, observation := range observations {
			state, err = stochmodels.GetUpdatedKCAState(state, dimensions, observation, innovationSigma)
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(os.Stdout, state)
		return nil
	},
}

func init() {
	kcaCmd.Flags().String("input", "-", "series file with one sample per line, - for stdin")
	kcaCmd.Flags().Float64("h", 1.0, "sampling step of the kinetic expansion")
	kcaCmd.Flags().Float64("q", 0.001, "process noise of the velocity and acceleration components")
	kcaCmd.Flags().Float64Slice("observation", nil, "observations to fold in after initialisation")
	kcaCmd.Flags().Float64("innovation-sigma", 0.1, "standard deviation of the observation noise")

	RootCmd.AddCommand(kcaCmd)
}
