package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "generate", "Grunburg", "--season", "autumn", "--seed", "11", "--format", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Contains(t, result, "slots")
	assert.Equal(t, float64(11), result["metadata"].(map[string]interface{})["seed"])
}

func TestGenerateUnknownSettlement(t *testing.T) {
	_, err := execute(t, "generate", "Nowhere", "--season", "spring", "--seed", "1", "--format", "text")
	assert.Error(t, err)
}

func TestSettlementsRegion(t *testing.T) {
	out, err := execute(t, "settlements", "--region", "Middenland")
	require.NoError(t, err)
	assert.Contains(t, out, "Middenheim")
	assert.NotContains(t, out, "Altdorf")
}

func TestCargoList(t *testing.T) {
	out, err := execute(t, "cargo", "--season", "winter")
	require.NoError(t, err)
	assert.Contains(t, out, "PRICE (WINTER)")
	assert.Contains(t, out, "Grain")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}
