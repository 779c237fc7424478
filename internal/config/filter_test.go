package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadFilterConfig(t *testing.T) {
	path := writeFile(t, "filter.json", `{"min_cutoff": 2.5, "beta": 0.7}`)

	cfg, err := LoadFilterConfig(path)
	require.NoError(t, err)

	props, err := cfg.Apply(oneeuro.DefaultProperties())
	require.NoError(t, err)
	assert.Equal(t, oneeuro.Properties{MinCutoff: 2.5, Beta: 0.7, DerivativeCutoff: 1}, props)
}

func TestLoadFilterConfigPreset(t *testing.T) {
	path := writeFile(t, "hand.json", `{"preset": "hand", "beta": 4}`)

	cfg, err := LoadFilterConfig(path)
	require.NoError(t, err)

	props, err := cfg.Apply(oneeuro.DefaultProperties())
	require.NoError(t, err)
	assert.Equal(t, 2.0, props.MinCutoff)
	assert.Equal(t, 4.0, props.Beta)
	assert.Equal(t, 1.0, props.DerivativeCutoff)
}

func TestLoadFilterConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "extension", file: "filter.yaml", content: `{}`, wantErr: ".json extension"},
		{name: "syntax", file: "bad.json", content: `{"beta":`, wantErr: "parse JSON"},
		{name: "unknown field", file: "unknown.json", content: `{"gain": 1}`, wantErr: "unknown field"},
		{name: "invalid value", file: "neg.json", content: `{"min_cutoff": -1}`, wantErr: "min cutoff"},
		{name: "trailing garbage", file: "trail.json", content: `{"beta":1} garbage`, wantErr: "parse JSON"},
		{name: "second object", file: "two.json", content: `{"beta":1}{"beta":2}`, wantErr: "trailing data"},
		{name: "bad preset", file: "preset.json", content: `{"preset": "head"}`, wantErr: "unknown preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := LoadFilterConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFilterConfigMissingFile(t *testing.T) {
	_, err := LoadFilterConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFilterConfigTooLarge(t *testing.T) {
	path := writeFile(t, "big.json", `{"beta": 1}`+strings.Repeat(" ", maxConfigSize))

	_, err := LoadFilterConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestParseFilterConfigTrailingWhitespace(t *testing.T) {
	cfg, err := ParseFilterConfig([]byte("{\"beta\": 2}\n\n  "))
	require.NoError(t, err)
	require.NotNil(t, cfg.Beta)
	assert.Equal(t, 2.0, *cfg.Beta)
}

func TestPreset(t *testing.T) {
	p, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, oneeuro.DefaultProperties(), p)

	p, err = Preset("HAND")
	require.NoError(t, err)
	assert.Equal(t, oneeuro.HandPositionProperties(), p)
}
