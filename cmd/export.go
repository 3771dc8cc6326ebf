package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	csvexport "github.com/bnema/nextlevel-elevator/internal/adapters/export/csv"
	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the demand history dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" || output == "-" {
				return app.service.WriteDataset(cmd.Context(), cmd.OutOrStdout(), format)
			}

			if _, err := app.service.Dataset(format); err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}

			if err := app.service.WriteDataset(cmd.Context(), file, format); err != nil {
				_ = file.Close()
				return err
			}

			return file.Close()
		},
	}

	cmd.Flags().StringVar(&format, "format", csvexport.Format, "dataset format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
