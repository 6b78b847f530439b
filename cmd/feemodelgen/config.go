package main

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/feemodel-ml/feemodel/internal/compiler"
)

// fileConfig mirrors the optional TOML model list:
//
//	[[models]]
//	name = "low"
//	path = "testdata/low.cbor"
type fileConfig struct {
	Models []struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	} `toml:"models"`
}

// defaultModels is the shipped model set, with paths relative to the
// models directory.
func defaultModels(dir string) []compiler.Named {
	return []compiler.Named{
		{Name: "test_model", Path: filepath.Join(dir, "testdata", "test_model.cbor")},
		{Name: "low", Path: filepath.Join(dir, "testdata", "low.cbor")},
		{Name: "high", Path: filepath.Join(dir, "testdata", "high.cbor")},
	}
}

// resolveModels layers the model list: defaults, then the TOML config,
// then the FEEMODEL_MODELS environment variable, then the --models flag.
// Later layers replace entries by name and append unknown names in order.
func resolveModels(dir, configPath, modelsFlag string) ([]compiler.Named, error) {
	models := defaultModels(dir)

	if configPath != "" {
		fromFile, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		models = mergeModels(models, fromFile)
	}
	if env := os.Getenv("FEEMODEL_MODELS"); env != "" {
		fromEnv, err := compiler.ParseModelList(env)
		if err != nil {
			return nil, fmt.Errorf("FEEMODEL_MODELS: %w", err)
		}
		models = mergeModels(models, fromEnv)
	}
	if modelsFlag != "" {
		fromFlag, err := compiler.ParseModelList(modelsFlag)
		if err != nil {
			return nil, fmt.Errorf("--models: %w", err)
		}
		models = mergeModels(models, fromFlag)
	}
	return models, nil
}

func loadConfig(path string) ([]compiler.Named, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	named := make([]compiler.Named, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		if m.Name == "" || m.Path == "" {
			return nil, fmt.Errorf("%s: every [[models]] entry needs name and path", path)
		}
		named = append(named, compiler.Named{Name: m.Name, Path: m.Path})
	}
	return named, nil
}

func mergeModels(base, overlay []compiler.Named) []compiler.Named {
	merged := append([]compiler.Named(nil), base...)
	for _, m := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Name == m.Name {
				merged[i].Path = m.Path
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, m)
		}
	}
	return merged
}
