package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/verdant/pkg/formatting"
)

func newArchiveCmd() *cobra.Command {
	var plant string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Upload a CSV export of the history to blob storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			a, err := s.history.Archive(cmd.Context(), plant)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Kunci: %s\n", a.Key)
			fmt.Fprintf(w, "Jumlah: %d\n", a.Entries)
			fmt.Fprintf(w, "Ukuran: %s\n", formatting.FormatBytes(int64(a.Size), 1))
			return nil
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Only archive predictions for this plant")
	return cmd
}
