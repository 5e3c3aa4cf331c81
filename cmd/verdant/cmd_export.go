package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		plant  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the prediction history as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := s.history.Export(cmd.Context(), plant)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", output)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&plant, "plant", "", "Only export predictions for this plant")
	f.StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
