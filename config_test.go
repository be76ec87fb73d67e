// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/afskdecode/samplebits"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
threshold: 300us
lead_in: 2s
trail_out: 250ms
slack: 5ms
min_sample_rate: 11025
channel: 1
invert: true
amplitude: 0.8
workers: 2
`))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	want := DefaultConfig()
	want.Threshold = 300 * time.Microsecond
	want.LeadIn = 2 * time.Second
	want.TrailOut = 250 * time.Millisecond
	want.Slack = 5 * time.Millisecond
	want.MinSampleRate = 11025
	want.Channel = 1
	want.Invert = true
	want.Amplitude = 0.8
	want.Workers = 2

	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"", "mix: false\n"} {
		cfg, err := ParseConfig([]byte(data))
		if err != nil {
			t.Fatalf("ParseConfig(%q) error = %v", data, err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("ParseConfig(%q) = %+v, want defaults", data, cfg)
		}
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "treshold: 320us\n"},
		{"bad duration", "threshold: fast\n"},
		{"amplitude", "amplitude: 1.5\n"},
		{"workers", "workers: 0\n"},
		{"slack", "slack: 1s\n"},
		{"not a mapping", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseConfig(%q) error = %v, want ErrInvalidConfig", tt.data, err)
			}
		})
	}

	_, err := ParseConfig([]byte("slack: 1s\n"))
	if !errors.Is(err, samplebits.ErrInvalidConfig) {
		t.Errorf("ParseConfig() error = %v, want it to wrap samplebits.ErrInvalidConfig", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "afsk.yaml")
	if err := os.WriteFile(path, []byte("lead_in: 1500ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LeadIn != 1500*time.Millisecond {
		t.Errorf("LeadIn = %v, want 1.5s", cfg.LeadIn)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want os.ErrNotExist", err)
	}
}
