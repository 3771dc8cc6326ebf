package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/nextlevel-elevator/internal/adapters/render/status"
	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/spf13/cobra"
)

type elevatorJSON struct {
	ID         int64 `json:"id"`
	MinLevel   int   `json:"min_level"`
	MaxLevel   int   `json:"max_level"`
	OpenLevels []int `json:"open_levels,omitempty"`
}

func newElevatorCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elevator",
		Short: "Register and inspect elevators",
	}

	cmd.AddCommand(
		newElevatorRegisterCmd(app),
		newElevatorListCmd(app),
		newElevatorStatusCmd(app),
	)

	return cmd
}

func newElevatorRegisterCmd(app *app) *cobra.Command {
	var minLevel, maxLevel int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an elevator serving --min-level..--max-level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			elevator, err := app.service.RegisterElevator(cmd.Context(), application.RegisterElevatorCommand{
				MinLevel: minLevel,
				MaxLevel: maxLevel,
			})
			if err != nil {
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(elevatorJSON{
				ID:       int64(elevator.ID),
				MinLevel: elevator.MinLevel,
				MaxLevel: elevator.MaxLevel,
			})
		},
	}

	cmd.Flags().IntVar(&minLevel, "min-level", 0, "lowest served level")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "highest served level")
	_ = cmd.MarkFlagRequired("min-level")
	_ = cmd.MarkFlagRequired("max-level")

	return cmd
}

func newElevatorListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered elevators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			elevators, err := app.service.ListElevators(cmd.Context())
			if err != nil {
				return err
			}

			for _, elevator := range elevators {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%d\n", elevator.ID, elevator.MinLevel, elevator.MaxLevel)
			}

			return nil
		},
	}
}

func newElevatorStatusCmd(app *app) *cobra.Command {
	var (
		id     int64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show open demands per elevator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := loadStatuses(cmd, app.service, domain.ElevatorID(id))
			if err != nil {
				return err
			}

			return writeStatusesOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "only this elevator")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the terminal view")

	return cmd
}

func loadStatuses(cmd *cobra.Command, svc *application.Service, id domain.ElevatorID) ([]application.ElevatorStatus, error) {
	if id == 0 {
		return svc.GetStatusAll(cmd.Context())
	}

	status, err := svc.GetStatus(cmd.Context(), id)
	if err != nil {
		return nil, err
	}

	return []application.ElevatorStatus{status}, nil
}

func writeStatusesOutput(cmd *cobra.Command, app *app, statuses []application.ElevatorStatus, asJSON bool) error {
	if asJSON {
		out := make([]elevatorJSON, 0, len(statuses))
		for _, status := range statuses {
			out = append(out, elevatorJSON{
				ID:         int64(status.Elevator.ID),
				MinLevel:   status.Elevator.MinLevel,
				MaxLevel:   status.Elevator.MaxLevel,
				OpenLevels: status.OpenLevels(),
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
