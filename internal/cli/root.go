// Package cli implements the cubesolver command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver/internal/config"
	"github.com/chintanlad10/cubesolver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	// Loaded configuration
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "CFOP Rubik's Cube solver",
	Long: `cubesolver - A CFOP (Cross, F2L, OLL, PLL) Rubik's Cube solver.

Solve scrambles or sticker states, generate scrambles, benchmark the
solver on random cubes, and browse your solve history.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/solves.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesolver/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the solve database honoring flag and config overrides.
func openDB() (*storage.DB, error) {
	switch {
	case dbPath != "":
		return storage.Open(dbPath)
	case cfg.DBPath != "":
		return storage.Open(cfg.DBPath)
	default:
		return storage.OpenDefault()
	}
}
