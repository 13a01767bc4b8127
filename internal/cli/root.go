// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/config"
	"github.com/seamusw/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket Cube Solver",
	Long: `Pocket Cube Solver - A CLI tool for solving the 2x2 Rubik's cube (pocket cube).

Solve scrambled cubes with a bounded breadth-first search, apply move
sequences, generate random scrambles, and browse the attempt history.

Cube layout format (faces in F, R, B, L, U, D order, 4 stickers each):
  [w,w,w,w],[o,o,o,o],[y,y,y,y],[r,r,r,r],[b,b,b,b],[g,g,g,g]`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.pocketcube/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig loads the config file from the flag path or the default.
func loadConfig() (config.Config, error) {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// openDB opens the history database, preferring the --db flag over the
// config file value.
func openDB(cfg config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// recordAttempt writes an attempt to the history database. Failures are
// logged, not fatal: the command's primary output already happened.
func recordAttempt(cfg config.Config, a *storage.Attempt) {
	log := newLogger()

	db, err := openDB(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("history not recorded")
		return
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)
	id, err := repo.Create(a)
	if err != nil {
		log.Warn().Err(err).Msg("history not recorded")
		return
	}
	log.Debug().Str("attempt_id", id).Str("kind", a.Kind).Msg("attempt recorded")
}
