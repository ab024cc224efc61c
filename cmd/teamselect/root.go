// Command teamselect is the driver binary: it reads a role file and a
// player table from disk, runs the selection core, and writes a report.
// Everything in this package is ambient plumbing (flags, config, logging)
// around the pure internal/teamselect.Run entry point.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "teamselect",
	Short: "Deterministic football-manager team selection",
	Long: `teamselect parses a role file and a player table, computes
eligibility under any per-player category filters, runs a deterministic
greedy assignment of players to roles, and renders a text report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(selectCmd, validateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
