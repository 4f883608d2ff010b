// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

// sphceval is a small driver around the go-sphc catalog: it lists the
// available test functions and evaluates one at a chosen point.
//
// Usage:
//
//	sphceval list
//	sphceval eval franke 1.2 0.4
//	sphceval eval cf_f1 0.23 0.42 --precision float32
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadbench/go-sphc/sphc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sphceval",
		Short:         "Evaluate spherical test functions from the go-sphc catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the catalog function names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range sphc.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	var precision string
	eval := &cobra.Command{
		Use:   "eval <name> <theta> <phi>",
		Short: "Evaluate one catalog function at spherical angles (theta, phi)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], args[1], args[2], precision)
		},
	}
	eval.Flags().StringVar(&precision, "precision", "float64",
		"evaluation precision: float32 or float64")

	root.AddCommand(list, eval)
	return root
}

func runEval(cmd *cobra.Command, name, thetaArg, phiArg, precision string) error {
	switch precision {
	case "float32":
		fn, ok := sphc.Lookup[float32](name)
		if !ok {
			return unknownNameError(name)
		}
		theta, err := parseAngle("theta", thetaArg, 32)
		if err != nil {
			return err
		}
		phi, err := parseAngle("phi", phiArg, 32)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", fn(float32(theta), float32(phi)))
	case "float64":
		fn, ok := sphc.Lookup[float64](name)
		if !ok {
			return unknownNameError(name)
		}
		theta, err := parseAngle("theta", thetaArg, 64)
		if err != nil {
			return err
		}
		phi, err := parseAngle("phi", phiArg, 64)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", fn(theta, phi))
	default:
		return fmt.Errorf("unknown precision %q (want float32 or float64)", precision)
	}
	return nil
}

func parseAngle(label, arg string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(arg, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", label, arg, err)
	}
	return v, nil
}

func unknownNameError(name string) error {
	return fmt.Errorf("unknown function %q; valid names:\n  %s",
		name, strings.Join(sphc.Names(), "\n  "))
}
