// Package cli implements the command-line interface for cubescan.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/config"
	"github.com/SeamusWaldron/cubescan/internal/recorder"
	"github.com/SeamusWaldron/cubescan/internal/sampler"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubescan",
	Short: "Cube face scanner and state tracker",
	Long: `cubescan reads photos of a 3x3 cube's faces, classifies the nine stickers
of each face and assembles them into a cube state that can then be turned
with standard move notation.

Capture the six faces in order (0 front, 1 back, 2 up, 3 down, 4 right,
5 left), then apply or play back moves against the assembled state.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ~/.cubescan/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the configuration and puts the logger in the command context.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	cmd.SetContext(log.WithContext(cmd.Context(), logger))
	return nil
}

func loggerFrom(cmd *cobra.Command) *log.Logger {
	return log.FromContext(cmd.Context())
}

// newScanner builds a scanner from the loaded configuration.
func newScanner(logger *log.Logger) *cubescan.Scanner {
	sc := cfg.Scanner
	opts := sampler.DefaultOptions()
	opts.EdgeRejection = sc.EdgeRejection
	opts.EdgeThreshold = sc.EdgeThreshold
	opts.ClusterThreshold = sc.ClusterThreshold

	return cubescan.NewScanner(
		cubescan.WithLogger(logger),
		cubescan.WithConfidenceFloor(sc.ConfidenceFloor),
		cubescan.WithSamplerOptions(opts),
		cubescan.WithRegionFraction(sc.RegionFraction),
		cubescan.WithDetector(cubescan.InitDetector(sc.Detector)),
		cubescan.WithThrottle(cubescan.NewThrottle(cfg.Throttle.MinRate, cfg.Throttle.MaxRate, cfg.Throttle.Slow())),
	)
}

// workspace is an open database plus the active session.
type workspace struct {
	db        *storage.DB
	stateFile *recorder.StateFile
	session   *recorder.Session
}

func (w *workspace) Close() error {
	return w.db.Close()
}

// openWorkspace opens the database and resumes the session named in the
// state file, starting a new one if there is none.
func openWorkspace(logger *log.Logger) (*workspace, error) {
	dbPath, err := config.ExpandPath(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	statePath, err := config.ExpandPath(cfg.Storage.StatePath)
	if err != nil {
		return nil, err
	}

	stateFile, err := recorder.NewStateFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	start := time.Now()
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path(), "elapsed", time.Since(start))

	if err := stateFile.SetDBPath(dbPath); err != nil {
		logger.Warn("failed to update state file", "err", err)
	}

	session := recorder.NewSession(db, stateFile, logger)
	if err := session.ResumeOrStart(); err != nil {
		db.Close()
		return nil, err
	}

	return &workspace{db: db, stateFile: stateFile, session: session}, nil
}
