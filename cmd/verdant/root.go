package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "verdant",
		Short: "Predict plant diseases from leaf symptoms",
		Long: "Verdant encodes plant attributes and symptoms, predicts the likely disease\n" +
			"with a pre-trained classifier, and keeps a history of every prediction.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	root.AddCommand(
		newPredictCmd(),
		newHistoryCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newArchiveCmd(),
		newCategoriesCmd(),
	)
	return root
}
