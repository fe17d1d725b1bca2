package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/config"
	"github.com/kilianp07/dayplan/core/population"
	"github.com/kilianp07/dayplan/infra/diary"
	"github.com/kilianp07/dayplan/infra/logger"
	"github.com/kilianp07/dayplan/infra/matsim"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Activity plan toolkit for synthetic populations",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadPopulation builds the population from whichever input the config
// names. A MATSim plans file wins over a travel diary when both are set.
func loadPopulation(cfg *config.Config, log logger.Logger) (*population.Population, error) {
	switch {
	case cfg.MATSim.Input != "":
		parser := matsim.NewParser(matsim.ReadOptions{
			SimplifyPTTrips: cfg.MATSim.SimplifyPTTrips,
			Crop:            cfg.Repair.Crop,
			Autocomplete:    cfg.MATSim.Autocomplete,
		})
		parser.SetLogger(log)
		return parser.ReadFile(cfg.MATSim.Input)
	case cfg.Diary.Path != "":
		reader := diary.NewReader()
		reader.TourBased = !cfg.Diary.TripBased
		reader.SetLogger(log)
		return reader.LoadFile(cfg.Diary.Path)
	default:
		return nil, fmt.Errorf("no input configured: set diary.path or matsim.input")
	}
}
