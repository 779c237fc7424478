// Package config loads One-Euro filter parameters from JSON files.
//
// All fields are optional pointers: a field left out of the file keeps the
// value of the base Properties it is applied to.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
)

const maxConfigSize = 1 << 20

// FilterConfig is the JSON form of oneeuro.Properties.
type FilterConfig struct {
	Preset           *string  `json:"preset,omitempty"`
	MinCutoff        *float64 `json:"min_cutoff,omitempty"`
	Beta             *float64 `json:"beta,omitempty"`
	DerivativeCutoff *float64 `json:"derivative_cutoff,omitempty"`
}

// LoadFilterConfig reads and validates a filter configuration file.
func LoadFilterConfig(path string) (*FilterConfig, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("config: file must have .json extension: %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config: file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := ParseFilterConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// ParseFilterConfig decodes a configuration document. Unknown fields and
// data after the object are rejected.
func ParseFilterConfig(data []byte) (*FilterConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg FilterConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse JSON: trailing data after configuration object")
	}

	if _, err := cfg.Apply(oneeuro.DefaultProperties()); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Preset returns the named property preset: "default" or "hand".
func Preset(name string) (oneeuro.Properties, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return oneeuro.DefaultProperties(), nil
	case "hand":
		return oneeuro.HandPositionProperties(), nil
	default:
		return oneeuro.Properties{}, fmt.Errorf("unknown preset %q", name)
	}
}

// Apply overlays the configured fields on base. A preset, when set, replaces
// base before the individual fields are applied.
func (c *FilterConfig) Apply(base oneeuro.Properties) (oneeuro.Properties, error) {
	props := base

	if c.Preset != nil {
		p, err := Preset(*c.Preset)
		if err != nil {
			return oneeuro.Properties{}, err
		}

		props = p
	}

	if c.MinCutoff != nil {
		props.MinCutoff = *c.MinCutoff
	}

	if c.Beta != nil {
		props.Beta = *c.Beta
	}

	if c.DerivativeCutoff != nil {
		props.DerivativeCutoff = *c.DerivativeCutoff
	}

	if err := props.Validate(); err != nil {
		return oneeuro.Properties{}, err
	}

	return props, nil
}
