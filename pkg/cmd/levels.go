package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/stochmodels/pkg/trading"
)

// go run ./cmd/stochmodels levels --mu=0.3 --alpha=8 --sigma=0.3 --rate=0.05 --cost=0.02
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "solve the optimal trading levels of a fitted OU process",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadModelConfig(cmd)
		if err != nil {
			return err
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return err
		}
		cost, err := cmd.Flags().GetFloat64("cost")
		if err != nil {
			return err
		}
		stopLoss, err := cmd.Flags().GetFloat64("stop-loss")
		if err != nil {
			return err
		}
		exponential, err := cmd.Flags().GetBool("exponential")
		if err != nil {
			return err
		}
		withStopLoss := cmd.Flags().Changed("stop-loss")

		var levels *trading.Levels
		if exponential {
			levels = trading.NewExponentialLevels(config.Mu, config.Alpha, config.Sigma)
		} else {
			levels = trading.NewLevels(config.Mu, config.Alpha, config.Sigma)
		}

		writer := table.NewWriter()
		writer.SetOutputMirror(os.Stdout)
		writer.AppendHeader(table.Row{"Level", "Value"})

		var exit float64
		if withStopLoss {
			exit, err = levels.OptimalExitStopLoss(stopLoss, rate, cost)
		} else {
			exit, err = levels.OptimalExit(rate, cost)
		}
		if err != nil {
			return err
		}
		writer.AppendRow(table.Row{"exit (b*)", exit})

		var entry float64
		if withStopLoss {
			entry, err = levels.OptimalEntryStopLoss(exit, stopLoss, rate, cost)
		} else {
			entry, err = levels.OptimalEntry(exit, rate, cost)
		}
		if err != nil {
			return err
		}
		writer.AppendRow(table.Row{"entry (d*)", entry})

		var entryLower float64
		if withStopLoss {
			entryLower, err = levels.OptimalEntryLowerStopLoss(entry, exit, stopLoss, rate, cost)
		} else {
			entryLower, err = levels.OptimalEntryLower(entry, exit, rate, cost)
		}
		switch {
		case err == nil:
			writer.AppendRow(table.Row{"entry lower (a*)", entryLower})
		case errors.Is(err, trading.ErrNotApplicable):
			log.WithError(err).Debug("skipping the lower entry level")
		default:
			return err
		}

		writer.Render()
		return nil
	},
}

func init() {
	levelsCmd.Flags().Float64("mu", 0, "long run mean of the process")
	levelsCmd.Flags().Float64("alpha", 1, "mean reversion speed")
	levelsCmd.Flags().Float64("sigma", 1, "volatility")
	levelsCmd.Flags().Float64("rate", 0.05, "discount rate")
	levelsCmd.Flags().Float64("cost", 0, "transaction cost")
	levelsCmd.Flags().Float64("stop-loss", 0, "forced liquidation level")
	levelsCmd.Flags().Bool("exponential", false, "treat inputs as log prices of an exponential OU process")

	RootCmd.AddCommand(levelsCmd)
}
