package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/config"
	coremetrics "github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/infra/logger"
	"github.com/kilianp07/dayplan/infra/matsim"
	"github.com/kilianp07/dayplan/infra/metrics"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair invalid plans and write them as MATSim plans",
	RunE:  repairPlans,
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func repairPlans(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetGlobalLevel(cfg.Logging.Level)
	logg := logger.New("repair-command")

	var sink coremetrics.RepairSink
	if cfg.Metrics.Enabled {
		sink, err = metrics.NewPromSink()
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.Addr); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
	}

	pop, err := loadPopulation(cfg, logg)
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}

	pop.SetMetricsSink(sink)

	before := pop.Stats()
	pop.FixPlans(cfg.Repair, sink)
	after := pop.Stats()

	logg.Infof("repaired population: %d persons, %d -> %d valid plans",
		after.Persons, before.ValidPlans, after.ValidPlans)

	if err := matsim.WriteFile(cfg.MATSim.Output, pop); err != nil {
		return fmt.Errorf("write plans: %w", err)
	}
	logg.Infof("wrote %s", cfg.MATSim.Output)
	return nil
}
