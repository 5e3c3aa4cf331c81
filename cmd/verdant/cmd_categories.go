package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the plants, leaf colors, and symptoms the model accepts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			cats := s.predictions.Categories()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Nama Tanaman: %s\n", strings.Join(cats.Plants, ", "))
			colors := make([]string, len(cats.LeafColors))
			for i, c := range cats.LeafColors {
				colors[i] = fmt.Sprintf("%d=%s", c.Code, c.Label)
			}
			fmt.Fprintf(out, "Warna Daun: %s\n", strings.Join(colors, ", "))
			fmt.Fprintf(out, "Gejala: %s\n", strings.Join(cats.Symptoms, ", "))
			if len(cats.Diseases) > 0 {
				fmt.Fprintf(out, "Penyakit: %s\n", strings.Join(cats.Diseases, ", "))
			}
			return nil
		},
	}
}
