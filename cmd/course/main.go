// course generates and runs procedural hazard courses headlessly.
//
// Usage:
//
//	course hazards           - List registered block kinds
//	course layout            - Print a generated layout and its bounds
//	course simulate          - Run the autopilot through generated courses
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: from config)
//	--seed <value>          - Set course seed
//	--config <path>         - Use a specific config file
//	--difficulty <preset>   - easy, normal, hard or marathon
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-course/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "course",
	Short: "Hazard course - procedural obstacle courses",
	Long: `Hazard course generates obstacle courses from a seed and a palette of
hazards, and drives their moving obstacles frame by frame.

Available commands:
  hazards  - Show all registered block kinds
  layout   - Print the generated layout and bounds
  simulate - Run an autopilot through one or more courses

Examples:
  course hazards
  course layout --seed 42 --format table
  course simulate --difficulty hard --runs 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Course seed (overrides config when set)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to course.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (easy, normal, hard, marathon)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(hazardsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig resolves the configuration from file and global flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Course.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Run.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "course",
	})
	if level, err := cfg.LogLevel(); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
