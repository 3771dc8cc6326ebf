package cmd

import (
	"fmt"

	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/spf13/cobra"
)

func addSlotFlags(cmd *cobra.Command, elevatorID *int64, level *int) {
	cmd.Flags().Int64Var(elevatorID, "elevator", 0, "elevator id")
	cmd.Flags().IntVar(level, "level", 0, "level")
	_ = cmd.MarkFlagRequired("elevator")
	_ = cmd.MarkFlagRequired("level")
}

func newCallCmd(app *app) *cobra.Command {
	var (
		elevatorID int64
		level      int
	)

	cmd := &cobra.Command{
		Use:   "call",
		Short: "Call an elevator to a level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.RequestCall(cmd.Context(), application.CallCommand{
				ElevatorID: domain.ElevatorID(elevatorID),
				Level:      level,
			}); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), application.ArrivalAccepted)
			return err
		},
	}
	addSlotFlags(cmd, &elevatorID, &level)

	return cmd
}

func newArriveCmd(app *app) *cobra.Command {
	var (
		elevatorID int64
		level      int
	)

	cmd := &cobra.Command{
		Use:   "arrive",
		Short: "Report that an elevator reached a level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcome, err := app.service.ReportArrival(cmd.Context(), application.ArrivalCommand{
				ElevatorID: domain.ElevatorID(elevatorID),
				Level:      level,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome)
			return err
		},
	}
	addSlotFlags(cmd, &elevatorID, &level)

	return cmd
}
