/*
 * run.go, part of gogaussian.
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
)

var runCmd = &cobra.Command{
	Use:   "run <molecule.sdf>",
	Short: "Build the input for a molecule, run Gaussian and report the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

var inputCmd = &cobra.Command{
	Use:   "input <molecule.sdf>",
	Short: "Only write the Gaussian input for a molecule",
	Args:  cobra.ExactArgs(1),
	RunE:  runInput,
}

func init() {
	for _, c := range []*cobra.Command{runCmd, inputCmd} {
		c.Flags().StringVarP(&configFile, "config", "c", "", "calculation settings (.toml or .yaml)")
		c.MarkFlagRequired("config")
		rootCmd.AddCommand(c)
	}
	runCmd.Flags().StringVar(&command, "command", "", "Gaussian executable (default from the settings, $GAUSSIAN_COMMAND or g09)")
	runCmd.Flags().StringVar(&plotName, "plot", "", "save the energy profile of the optimization as <plot>.png")
	runCmd.Flags().StringVarP(&outXYZ, "out", "o", "", "write the optimized geometry to this xyz file")
}

func runInput(cmd *cobra.Command, args []string) error {
	G, err := newHandle()
	if err != nil {
		return err
	}
	sdf, err := readFile(args[0])
	if err != nil {
		return err
	}
	if err := G.BuildInput(sdf); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", G.InputFile())
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	G, err := newHandle()
	if err != nil {
		return err
	}
	sdf, err := readFile(args[0])
	if err != nil {
		return err
	}
	if err := G.Clean(); err != nil {
		cmd.PrintErrf("cleaning %s: %v\n", workDir, err)
	}
	if err := G.BuildInput(sdf); err != nil {
		return err
	}
	converged, err := G.Run()
	if err != nil {
		return err
	}
	if !converged {
		return report(cmd.OutOrStdout(), nil, false)
	}
	res, err := G.Result()
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), res, true)
}
