package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feemodel-ml/feemodel/internal/compiler"
)

func TestResolveModelsDefaults(t *testing.T) {
	t.Setenv("FEEMODEL_MODELS", "")

	models, err := resolveModels("models", "", "")
	require.NoError(t, err)
	require.Len(t, models, 3)
	assert.Equal(t, "test_model", models[0].Name)
	assert.Equal(t, filepath.Join("models", "testdata", "test_model.cbor"), models[0].Path)
	assert.Equal(t, "low", models[1].Name)
	assert.Equal(t, "high", models[2].Name)
}

func TestResolveModelsLayering(t *testing.T) {
	t.Setenv("FEEMODEL_MODELS", "low:env/low.cbor")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "models.toml")
	cfg := "[[models]]\nname = \"high\"\npath = \"cfg/high.cbor\"\n\n" +
		"[[models]]\nname = \"extra\"\npath = \"cfg/extra.cbor\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	models, err := resolveModels(".", cfgPath, "extra:flag/extra.cbor")
	require.NoError(t, err)
	require.Len(t, models, 4)

	byName := map[string]string{}
	for _, m := range models {
		byName[m.Name] = m.Path
	}
	// env beats defaults, config rewrites high, the flag beats the config.
	assert.Equal(t, "env/low.cbor", byName["low"])
	assert.Equal(t, "cfg/high.cbor", byName["high"])
	assert.Equal(t, "flag/extra.cbor", byName["extra"])
}

func TestResolveModelsRejectsBadList(t *testing.T) {
	t.Setenv("FEEMODEL_MODELS", "")

	_, err := resolveModels(".", "", "nocolon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--models")
}

func TestMergeModelsKeepsOrder(t *testing.T) {
	base := []compiler.Named{{Name: "a", Path: "1"}, {Name: "b", Path: "2"}}
	merged := mergeModels(base, []compiler.Named{{Name: "b", Path: "3"}, {Name: "c", Path: "4"}})
	require.Len(t, merged, 3)
	assert.Equal(t, []compiler.Named{{Name: "a", Path: "1"}, {Name: "b", Path: "3"}, {Name: "c", Path: "4"}}, merged)
}
