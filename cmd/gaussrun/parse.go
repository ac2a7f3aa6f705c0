/*
 * parse.go, part of gogaussian.
 *
 *
 * Copyright 2024 The gogaussian Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/fafoom/gogaussian/qm"
)

var parseCmd = &cobra.Command{
	Use:   "parse <output.log>",
	Short: "Read the results of an existing Gaussian output (plain, .gz or .zst)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, converged, err := qm.ParseGaussianLogFile(args[0])
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), res, converged)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the files left by a previous ORCA calculation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		G, err := qm.NewGaussianHandle(qm.Calc{Method: "none"})
		if err != nil {
			return err
		}
		G.SetDir(workDir)
		return G.Clean()
	},
}

func init() {
	parseCmd.Flags().StringVar(&plotName, "plot", "", "save the energy profile of the optimization as <plot>.png")
	parseCmd.Flags().StringVarP(&outXYZ, "out", "o", "", "write the optimized geometry to this xyz file")
	rootCmd.AddCommand(parseCmd, cleanCmd)
}
