package forge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	r := NewRule()
	r.SetName("Health Insurance Account Selector")

	path, err := r.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Health_Insurance_Account_Selector-Generated.rbx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.ID(), decoded["id"])
}

func TestExportUniquenessSuffix(t *testing.T) {
	dir := t.TempDir()
	r := NewRule()
	r.SetName("Pricing")

	first, err := r.Export(dir)
	require.NoError(t, err)
	second, err := r.Export(dir)
	require.NoError(t, err)
	third, err := r.Export(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Pricing-Generated.rbx"), first)
	assert.Equal(t, filepath.Join(dir, "Pricing-Generated_1.rbx"), second)
	assert.Equal(t, filepath.Join(dir, "Pricing-Generated_2.rbx"), third)
}

func TestExportSanitizesName(t *testing.T) {
	dir := t.TempDir()
	r := NewRule()
	r.SetName("Plan: A/B?")

	path, err := r.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Plan__A_B_-Generated.rbx"), path)
}

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "rules")
	r := NewRule()

	path, err := r.Export(dir)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
