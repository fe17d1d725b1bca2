package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/config"
	"github.com/kilianp07/dayplan/infra/logger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the configured population",
	RunE:  printStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetGlobalLevel(cfg.Logging.Level)

	pop, err := loadPopulation(cfg, logger.New("stats-command"))
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}

	s := pop.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "households:     %d\n", s.Households)
	fmt.Fprintf(out, "persons:        %d\n", s.Persons)
	fmt.Fprintf(out, "activities:     %d\n", s.Activities)
	fmt.Fprintf(out, "legs:           %d\n", s.Legs)
	fmt.Fprintf(out, "valid plans:    %d\n", s.ValidPlans)
	fmt.Fprintf(out, "mean trip freq: %.2f\n", s.MeanTripFreq)
	return nil
}
