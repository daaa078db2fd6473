// Package cli implements the command-line interface for gocube.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model/internal/config"
	"github.com/SeamusWaldron/gocube_model/internal/logging"
	"github.com/SeamusWaldron/gocube_model/internal/storage"
)

const version = "0.2.0"

// app holds the state shared by every command of one invocation.
type app struct {
	// Global flags
	configDir string
	dbPath    string
	verbose   bool
	noColor   bool

	settings config.Settings
	log      zerolog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "gocube",
		Short: "Rubik's cube move simulator",
		Long: `gocube - A command-line simulator for the 3x3x3 Rubik's cube.

Apply algorithms in standard notation to a virtual cube, inspect the
resulting net, compute how many repetitions bring an algorithm back to
solved, generate scrambles, and keep a library of named algorithms.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config", "", "Config directory (default: ~/.gocube_model)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Algorithm database path (default: ~/.gocube_model/algorithms.db)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Print the cube net as letters")

	rootCmd.AddCommand(
		newApplyCmd(a),
		newParseCmd(a),
		newOrderCmd(a),
		newScrambleCmd(a),
		newAlgCmd(a),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	dir := a.configDir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}
	if err := config.Load(dir); err != nil {
		return err
	}

	if a.dbPath != "" {
		config.Set("dbPath", a.dbPath)
	}
	if a.verbose {
		config.Set("logLevel", "debug")
	}
	if a.noColor {
		config.Set("color", false)
	}

	settings, err := config.Current()
	if err != nil {
		return err
	}
	a.settings = settings
	a.log = logging.New(settings.LogLevel, cmd.ErrOrStderr())
	a.log.Debug().Str("config_dir", dir).Msg("configuration loaded")
	return nil
}

// openLibrary opens the algorithm database and runs pending migrations.
func (a *app) openLibrary() (*storage.DB, *storage.AlgorithmRepository, error) {
	var (
		db  *storage.DB
		err error
	)
	if a.settings.DBPath != "" {
		db, err = storage.Open(a.settings.DBPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	a.log.Debug().Str("path", db.Path()).Msg("algorithm library opened")
	return db, storage.NewAlgorithmRepository(db, a.settings.OrderLimit), nil
}
