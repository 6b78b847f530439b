package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feemodel-ml/feemodel/internal/compiler"
	"github.com/feemodel-ml/feemodel/internal/shapes"
)

func buildGenerateCmd() *cobra.Command {
	var (
		out        string
		pkg        string
		dir        string
		configPath string
		modelsFlag string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile model containers into a generated Go source file",
		Example: "  feemodelgen generate --out models_gen.go\n" +
			"  feemodelgen generate --models extra:path/to/extra.cbor",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := resolveModels(dir, configPath, modelsFlag)
			if err != nil {
				return err
			}

			reg := shapes.NewRegistry()
			compiled := make([]*compiler.Compiled, 0, len(models))
			for _, m := range models {
				rec, err := compiler.Load(m.Path)
				if err != nil {
					return fmt.Errorf("load %s: %w", m.Name, err)
				}
				c, err := compiler.Compile(m.Name, rec, reg)
				if err != nil {
					return err
				}
				log.Info().
					Str("model", m.Name).
					Str("path", m.Path).
					Int("inputs", rec.InputSize()).
					Int("hidden", rec.HiddenSize()).
					Msg("compiled")
				compiled = append(compiled, c)
			}

			var buf bytes.Buffer
			if err := compiler.Generate(&buf, pkg, compiled, reg); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			log.Info().
				Str("out", out).
				Int("models", len(compiled)).
				Ints("dims", reg.All()).
				Msg("generated")
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "models_gen.go", "Output path for the generated source file")
	cmd.Flags().StringVar(&pkg, "pkg", "models", "Package name for the generated source file")
	cmd.Flags().StringVar(&dir, "dir", ".", "Models directory the default container paths are relative to")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML file listing models to compile")
	cmd.Flags().StringVar(&modelsFlag, "models", "", "Comma-separated name:path overrides")
	return cmd
}
