package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/verdant/internal/model"
	"github.com/JaimeStill/verdant/internal/predictions"
)

type predictFlags struct {
	plant         string
	leafColor     int
	leafSpot      bool
	leafWilt      bool
	stemRot       bool
	growthStunted bool
	dryRun        bool
	json          bool
}

func newPredictCmd() *cobra.Command {
	var flags predictFlags

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a disease and record it in the history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.plant, "plant", "", "Plant name (required)")
	f.IntVar(&flags.leafColor, "leaf-color", 0, "Leaf color code: 0=Hijau, 1=Kuning, 2=Coklat")
	f.BoolVar(&flags.leafSpot, "leaf-spot", false, "Leaf spots present")
	f.BoolVar(&flags.leafWilt, "leaf-wilt", false, "Leaves wilting")
	f.BoolVar(&flags.stemRot, "stem-rot", false, "Stem rot present")
	f.BoolVar(&flags.growthStunted, "growth-stunted", false, "Growth stunted")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Predict without recording the result")
	f.BoolVar(&flags.json, "json", false, "Print the result as JSON")

	_ = cmd.MarkFlagRequired("plant")
	return cmd
}

func runPredict(cmd *cobra.Command, flags *predictFlags) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	req := predictions.NewRequest(flags.plant, flags.leafColor, model.Symptoms{
		LeafSpot:      flags.leafSpot,
		LeafWilt:      flags.leafWilt,
		StemRot:       flags.stemRot,
		GrowthStunted: flags.growthStunted,
	})
	out := cmd.OutOrStdout()

	if flags.dryRun {
		result, err := s.predictions.Predict(cmd.Context(), req)
		if err != nil {
			return err
		}
		if flags.json {
			return writeJSON(out, result)
		}
		printResult(out, result)
		return nil
	}

	outcome, err := s.predictions.Record(cmd.Context(), req)
	if err != nil {
		return err
	}
	if flags.json {
		return writeJSON(out, outcome)
	}

	printResult(out, outcome.Result)
	if !outcome.Saved {
		return fmt.Errorf("prediction not saved: %w", outcome.Err())
	}
	fmt.Fprintln(out, "Hasil disimpan ke riwayat prediksi")
	return nil
}

func printResult(out io.Writer, r *predictions.Result) {
	fmt.Fprintf(out, "Nama Tanaman: %s\n", r.PlantName)
	fmt.Fprintf(out, "Warna Daun: %s\n", r.LeafColor)
	fmt.Fprintf(out, "Prediksi Penyakit: %s\n", r.Disease)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
