// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/afskdecode/samplebits"
)

// Config holds every tunable of the decoder and the generator. Durations
// are written as Go duration strings in YAML, e.g. "320us" or "2.5s".
type Config struct {
	samplebits.Config `yaml:",inline"`

	// Amplitude of synthesized recordings, full scale is 1.
	Amplitude float64 `yaml:"amplitude"`
	// Workers limits how many files the command line tool decodes at once.
	Workers int `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Config:    samplebits.DefaultConfig(),
		Amplitude: 0.5,
		Workers:   4,
	}
}

func (c Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		return fmt.Errorf("%w: amplitude %v not in (0, 1]", ErrInvalidConfig, c.Amplitude)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
