// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Loadcell - Loadcell is the contract layer of the Loadwerk load-testing toolkit.
It declares load plans, validates ordering tags, records step outcomes, and renders deterministic reports without generating any load itself.

Copyright (C) 2025  Loadwerk Authors

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd constructs the Loadcell root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("LOADCELL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "loadcell",
		Short:         "Loadcell - load plan and results tooling for Loadwerk",
		Long:          "Loadcell declares load plans, validates ordering tags, and records and reports step outcomes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags; every flag can also be set via LOADCELL_* env vars.
	cmd.PersistentFlags().String("plan", "loadplan.yaml", "path to the load plan file or directory")
	cmd.PersistentFlags().String("state-dir", filepath.Join(".loadcell", "results"), "directory holding the results journal")

	viper.SetEnvPrefix("loadcell")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("plan", cmd.PersistentFlags().Lookup("plan"))
	_ = viper.BindPFlag("state-dir", cmd.PersistentFlags().Lookup("state-dir"))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Loadcell",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loadcell version %s\n", version)
		},
	})

	cmd.AddCommand(NewPlanCommand())
	cmd.AddCommand(NewResultsCommand())

	return cmd
}
