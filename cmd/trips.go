package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/config"
	"github.com/kilianp07/dayplan/infra/logger"
	"github.com/kilianp07/dayplan/pkg/export"
)

var tripsOut string

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Export the population's trips as CSV or JSON",
	RunE:  exportTrips,
}

func init() {
	tripsCmd.Flags().StringVarP(&tripsOut, "out", "o", "trips.csv", "output file, format by extension")
	rootCmd.AddCommand(tripsCmd)
}

func exportTrips(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetGlobalLevel(cfg.Logging.Level)
	logg := logger.New("trips-command")

	pop, err := loadPopulation(cfg, logg)
	if err != nil {
		return fmt.Errorf("load population: %w", err)
	}

	f, err := os.Create(tripsOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(tripsOut)) {
	case ".json":
		err = export.WriteJSON(f, pop)
	case ".csv":
		err = export.WriteCSV(f, pop)
	default:
		return fmt.Errorf("unsupported output format: %s", tripsOut)
	}
	if err != nil {
		return fmt.Errorf("write trips: %w", err)
	}
	logg.Infof("wrote %s", tripsOut)
	return nil
}
