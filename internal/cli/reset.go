package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a new session",
	Long: `Start a new scan session with no faces captured, or with a solved cube
when --solved is given. Earlier sessions stay in the database.`,
	RunE: runReset,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE:  runConfig,
}

var (
	resetSolved bool
	resetNotes  string
	configWrite bool
)

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	resetCmd.Flags().BoolVar(&resetSolved, "solved", false, "Start from a solved cube")
	resetCmd.Flags().StringVar(&resetNotes, "notes", "", "Notes to store with the session")
	configCmd.Flags().BoolVarP(&configWrite, "write", "w", false, "Write the effective configuration to the config file")
}

func runReset(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	initial := cubescan.NewState()
	if resetSolved {
		initial = cubescan.Solved()
	}

	id, err := ws.session.Start(resetNotes, initial)
	if err != nil {
		return err
	}

	fmt.Printf("Started session %s\n", id)
	fmt.Println(stateSummary(initial))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configWrite {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	fmt.Printf("scanner:\n")
	fmt.Printf("  confidence_floor:  %.2f\n", cfg.Scanner.ConfidenceFloor)
	fmt.Printf("  min_score:         %.0f\n", cfg.Scanner.MinScore)
	fmt.Printf("  edge_rejection:    %v (threshold %.0f)\n", cfg.Scanner.EdgeRejection, cfg.Scanner.EdgeThreshold)
	fmt.Printf("  cluster_threshold: %.0f\n", cfg.Scanner.ClusterThreshold)
	fmt.Printf("  region_fraction:   %.2f\n", cfg.Scanner.RegionFraction)
	fmt.Printf("  detector:          %s\n", cfg.Scanner.Detector)
	fmt.Printf("throttle: %d-%d scans/s, slow above %s\n", cfg.Throttle.MinRate, cfg.Throttle.MaxRate, cfg.Throttle.Slow())
	fmt.Printf("storage:  %s, %s\n", cfg.Storage.DBPath, cfg.Storage.StatePath)
	fmt.Printf("server:   %s\n", cfg.Server.Addr)
	return nil
}
