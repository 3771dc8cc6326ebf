package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Commands carrying this annotation run without opening config or storage.
const annotationNoApp = "nextlevel/no-app"

func Execute() error {
	rootCmd, a := newRootCmdWithApp()
	err := rootCmd.Execute()
	return errors.Join(err, a.Close())
}

func newRootCmdWithApp() (*cobra.Command, *app) {
	a := &app{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "elevator",
		Short:         "Elevator demand ledger: record calls, arrivals and export demand history",
		Long:          "elevator records per-level elevator calls, fulfils them when the car arrives, and keeps a calendar-decomposed history of fulfilled demand for prediction datasets.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipWiring(cmd) {
				return nil
			}
			return a.wire(cmd.Context(), configPath, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to elevator.toml (default: ./elevator.toml or ~/.config/nextlevel/elevator.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(a),
		newElevatorCmd(a),
		newCallCmd(a),
		newArriveCmd(a),
		newExportCmd(a),
	)

	return rootCmd, a
}

func skipWiring(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[annotationNoApp]; ok {
		return true
	}

	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}

	return false
}
