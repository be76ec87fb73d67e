// SPDX-License-Identifier: EPL-2.0

// Command afskdecode decodes AFSK tape recordings and prints their payload.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/afskdecode"
)

type result struct {
	path string
	msg  *afskdecode.Message
	err  error
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	configFile := pflag.StringP("config", "c", "", "YAML config file.")
	verbose := pflag.BoolP("verbose", "v", false, "Log every pipeline stage.")
	hexDump := pflag.BoolP("hex", "x", false, "Hex dump the framed bytes instead of printing the payload.")
	output := pflag.StringP("output", "o", "", "Write the payload to this file, or into this directory when decoding several files.")
	workers := pflag.IntP("workers", "w", 0, "Files decoded concurrently.")
	threshold := pflag.DurationP("threshold", "t", 0, "Rectangle duration, half a cycle of the fast tone.")
	leadIn := pflag.Duration("lead-in", 0, "Lead tone skipped at the start.")
	trailOut := pflag.Duration("trail-out", 0, "Trailing tone dropped at the end.")
	channel := pflag.Int("channel", 0, "Channel to decode.")
	mix := pflag.Bool("mix", false, "Average all channels instead of picking one.")
	invert := pflag.Bool("invert", false, "Swap the polarity of the samples.")
	minRate := pflag.Int("min-rate", 0, "Upsample recordings slower than this rate.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file...\n", filepath.Base(os.Args[0]))
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	if *verbose {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}

	cfg := afskdecode.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = afskdecode.LoadConfig(*configFile); err != nil {
			log.Fatal().Err(err).Str("config", *configFile).Msg("error reading config file")
		}
	}

	// flags given on the command line win over the config file
	changed := pflag.CommandLine.Changed
	if changed("workers") {
		cfg.Workers = *workers
	}
	if changed("threshold") {
		cfg.Threshold = *threshold
	}
	if changed("lead-in") {
		cfg.LeadIn = *leadIn
	}
	if changed("trail-out") {
		cfg.TrailOut = *trailOut
	}
	if changed("channel") {
		cfg.Channel = *channel
	}
	if changed("mix") {
		cfg.Mix = *mix
	}
	if changed("invert") {
		cfg.Invert = *invert
	}
	if changed("min-rate") {
		cfg.MinSampleRate = *minRate
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	dec := afskdecode.New(cfg, afskdecode.WithLogger(log.Logger))

	paths := pflag.Args()
	results := make([]result, len(paths))

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for i, path := range paths {
		eg.Go(func() error {
			msg, err := dec.DecodeFile(path)
			results[i] = result{path: path, msg: msg, err: err}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	failed := eg.Wait() != nil

	for _, r := range results {
		if r.err != nil {
			log.Error().Err(r.err).Str("file", r.path).Msg("decoding failed")
			continue
		}

		log.Info().
			Str("file", r.path).
			Int("rate", r.msg.SampleRate).
			Int("width", r.msg.Width).
			Int("bytes", len(r.msg.Bytes)).
			Msg("decoded")

		if err := emit(r, *output, len(paths) > 1, *hexDump); err != nil {
			log.Error().Err(err).Str("file", r.path).Msg("writing payload failed")
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func emit(r result, output string, many, hexDump bool) error {
	data := r.msg.Payload
	if hexDump {
		data = []byte(hex.Dump(r.msg.Bytes))
	}

	if output == "" {
		if len(data) > 0 && !hexDump {
			data = append(bytes.TrimRight(data, " "), '\n')
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	dst := output
	if many {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return err
		}
		base := filepath.Base(r.path)
		dst = filepath.Join(output, strings.TrimSuffix(base, filepath.Ext(base))+".bin")
	}

	return os.WriteFile(dst, data, 0o644)
}
