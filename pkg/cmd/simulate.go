package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/stochmodels/pkg/sde"
)

// go run ./cmd/stochmodels simulate --mu=0.3 --alpha=8 --sigma=0.3 --start=0.5 --n=250
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "simulate an Ornstein-Uhlenbeck path",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadModelConfig(cmd)
		if err != nil {
			return err
		}

		start, err := cmd.Flags().GetFloat64("start")
		if err != nil {
			return err
		}
		n, err := cmd.Flags().GetInt("n")
		if err != nil {
			return err
		}
		dt, err := cmd.Flags().GetFloat64("dt")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return err
		}
		summary, err := cmd.Flags().GetBool("summary")
		if err != nil {
			return err
		}

		var model *sde.OrnsteinUhlenbeck
		if cmd.Flags().Changed("seed") {
			model = sde.NewOrnsteinUhlenbeckSeed(config.Mu, config.Alpha, config.Sigma, seed)
		} else {
			model = sde.NewOrnsteinUhlenbeck(config.Mu, config.Alpha, config.Sigma)
		}

		path := model.Simulate(start, n, dt)

		if summary {
			mean, std := stat.MeanStdDev(path, nil)
			fmt.Fprintf(os.Stdout, "samples: %d\nmean: %f\nstd: %f\nlast: %f\n",
				len(path), mean, std, path[len(path)-1])
			return nil
		}

		for _, x := range path {
			fmt.Fprintln(os.Stdout, x)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().Float64("mu", 0, "long run mean of the process")
	simulateCmd.Flags().Float64("alpha", 1, "mean reversion speed")
	simulateCmd.Flags().Float64("sigma", 1, "volatility")
	simulateCmd.Flags().Float64("start", 0, "starting value of the path")
	simulateCmd.Flags().Int("n", 100, "number of samples")
	simulateCmd.Flags().Float64("dt", 1.0, "time step between samples")
	simulateCmd.Flags().Uint64("seed", 0, "random seed, random when omitted")
	simulateCmd.Flags().Bool("summary", false, "print summary statistics instead of samples")

	RootCmd.AddCommand(simulateCmd)
}
