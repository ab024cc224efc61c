package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/eligibility"
	"github.com/fmtools/team-selector/internal/players"
	"github.com/fmtools/team-selector/internal/rolefile"
)

var (
	validateRoleFile  string
	validateTableFile string
	validateFormat    string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse inputs and report per-player eligibility without assigning a team",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRoleFile, "role-file", "", "path to the role file (legacy or sectioned)")
	validateCmd.Flags().StringVar(&validateTableFile, "table-file", "", "path to the player table")
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "table format: csv or xlsx")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}

	roleFilePath := firstNonEmpty(validateRoleFile, cfg.RoleFile)
	tableFilePath := firstNonEmpty(validateTableFile, cfg.TableFile)
	format := firstNonEmpty(validateFormat, cfg.Format)

	roleFileData, err := os.ReadFile(roleFilePath)
	if err != nil {
		return err
	}
	table, err := readTable(tableFilePath, format)
	if err != nil {
		return err
	}

	rf, err := rolefile.Parse(roleFileData)
	if err != nil {
		return err
	}
	recs, warnings, err := players.ParseTable(table)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn(w.String())
	}

	idx := eligibility.Build(recs, rf, categories.Default)

	unfiltered, ineligible := 0, 0
	for _, p := range recs {
		if !idx.HasFilter(p.Name) {
			unfiltered++
			continue
		}
		if !idx.HasAnyEligibleRole(p.Name) {
			ineligible++
			fmt.Printf("- %s: filtered to zero eligible roles\n", p.Name)
		}
	}

	log.WithFields(logrus.Fields{
		"players":            len(recs),
		"roles_declared":     len(rf.Roles),
		"filters":            len(rf.Filters),
		"unfiltered_players": unfiltered,
		"zero_eligible":      ineligible,
	}).Info("validation complete")

	return nil
}
