package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/verdant/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var (
		plant    string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded predictions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.history.List(cmd.Context(), plant)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No predictions recorded.")
				return nil
			}

			header := make(table.Row, len(history.Columns))
			for i, c := range history.Columns {
				header[i] = c
			}
			t := newTable(header...)
			for _, e := range entries {
				row := make(table.Row, 0, len(history.Columns))
				for _, v := range e.Record() {
					row = append(row, v)
				}
				t.AppendRow(row)
			}
			return renderTable(out, t, markdown)
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Only show predictions for this plant")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as a Markdown table")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var (
		plant    string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count recorded predictions per disease",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			view, err := s.history.View(cmd.Context(), plant)
			if err != nil {
				return err
			}

			t := newTable("Penyakit", "Jumlah")
			for _, dc := range view.Summary.Ranked() {
				t.AppendRow(table.Row{dc.Disease, dc.Count})
			}
			t.AppendFooter(table.Row{"Total", view.Summary.Total()})
			return renderTable(cmd.OutOrStdout(), t, markdown)
		},
	}

	cmd.Flags().StringVar(&plant, "plant", "", "Only count predictions for this plant")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render as a Markdown table")
	return cmd
}
