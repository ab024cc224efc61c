package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fmtools/team-selector/internal/fmerr"
	"github.com/fmtools/team-selector/internal/teamselect"
)

var (
	selectRoleFile       string
	selectTableFile      string
	selectFormat         string
	selectOutput         string
	selectStrictWarnings bool
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Run full team selection and print the report",
	RunE:  runSelect,
}

func init() {
	selectCmd.Flags().StringVar(&selectRoleFile, "role-file", "", "path to the role file (legacy or sectioned)")
	selectCmd.Flags().StringVar(&selectTableFile, "table-file", "", "path to the player table")
	selectCmd.Flags().StringVar(&selectFormat, "format", "", "table format: csv or xlsx")
	selectCmd.Flags().StringVar(&selectOutput, "output", "", "write the report here instead of stdout")
	selectCmd.Flags().BoolVar(&selectStrictWarnings, "strict-warnings", false, "nonzero exit if any filtered player is left unassigned")
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	roleFilePath := firstNonEmpty(selectRoleFile, cfg.RoleFile)
	tableFilePath := firstNonEmpty(selectTableFile, cfg.TableFile)
	format := firstNonEmpty(selectFormat, cfg.Format)
	output := firstNonEmpty(selectOutput, cfg.Output)
	strict := selectStrictWarnings || cfg.StrictWarnings

	log.WithFields(logrus.Fields{
		"role_file":  roleFilePath,
		"table_file": tableFilePath,
		"format":     format,
	}).Info("running team selection")

	roleFileData, err := os.ReadFile(roleFilePath)
	if err != nil {
		return err
	}
	table, err := readTable(tableFilePath, format)
	if err != nil {
		return err
	}

	result, err := teamselect.Run(roleFileData, table)
	if err != nil {
		var fe *fmerr.Error
		if errors.As(err, &fe) {
			log.WithField("kind", fe.Kind.String()).Error(fe.Error())
		}
		return err
	}

	for _, w := range result.Parsing {
		log.Warn(w.String())
	}

	if err := writeReport(output, result.Report); err != nil {
		return err
	}

	if strict && len(result.Team.Unassigned) > 0 {
		os.Exit(1)
	}
	return nil
}

func writeReport(path, report string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(report)
		return err
	}
	return os.WriteFile(path, []byte(report), 0o644)
}
