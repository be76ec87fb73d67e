// SPDX-License-Identifier: EPL-2.0

// Command afskgen writes a WAV recording that afskdecode reads back.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/ik5/afskdecode"
	"github.com/ik5/afskdecode/formats/wav"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	configFile := pflag.StringP("config", "c", "", "YAML config file.")
	output := pflag.StringP("output", "o", "", "WAV file to write.")
	rate := pflag.IntP("rate", "r", 44100, "Sample rate.")
	amplitude := pflag.Float64P("amplitude", "a", 0, "Signal amplitude, 1 is full scale.")
	threshold := pflag.DurationP("threshold", "t", 0, "Rectangle duration, half a cycle of the fast tone.")
	invert := pflag.Bool("invert", false, "Swap the polarity of the samples.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -o file.wav [options] message...\n", filepath.Base(os.Args[0]))
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *output == "" || pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg := afskdecode.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = afskdecode.LoadConfig(*configFile); err != nil {
			log.Fatal().Err(err).Str("config", *configFile).Msg("error reading config file")
		}
	}
	if pflag.CommandLine.Changed("amplitude") {
		cfg.Amplitude = *amplitude
	}
	if pflag.CommandLine.Changed("threshold") {
		cfg.Threshold = *threshold
	}
	if pflag.CommandLine.Changed("invert") {
		cfg.Invert = *invert
	}

	payload := strings.Join(pflag.Args(), " ")
	samples, err := afskdecode.Synthesize([]byte(payload), *rate, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to synthesize recording")
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output file")
	}

	if err := wav.Encode(f, *rate, samples); err != nil {
		f.Close()
		log.Fatal().Err(err).Str("file", *output).Msg("failed to write recording")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Str("file", *output).Msg("failed to close recording")
	}

	log.Info().
		Str("file", *output).
		Int("rate", *rate).
		Int("bytes", len(payload)).
		Dur("length", samplesDuration(len(samples), *rate)).
		Msg("recording written")
}

func samplesDuration(n, rate int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(rate)
}
