package main

import (
	"github.com/spf13/cobra"

	"github.com/feemodel-ml/feemodel/internal/compiler"
)

func buildInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <container.cbor>...",
		Short:   "Decode model containers and print their layout",
		Example: "  feemodelgen inspect models/testdata/low.cbor",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				rec, err := compiler.Load(path)
				if err != nil {
					return err
				}
				log.Info().
					Str("path", path).
					Int("inputs", rec.InputSize()).
					Int("hidden", rec.HiddenSize()).
					Int("outputs", rec.OutputSize()).
					Float32("alpha", rec.Alpha).
					Strs("fields", rec.Fields).
					Msg("model container")
			}
			return nil
		},
	}
}
