// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated in a row
// before a source is considered stuck.
const maxEmptyReads = 100

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Drain reads src until io.EOF and hands every non-empty chunk to fn.
// The chunk is only valid until fn returns.
func Drain(src Source, bufSize int, fn func(chunk []float32) error) error {
	if bufSize <= 0 {
		return ErrInvalidBufSize
	}

	buf := make([]float32, bufSize)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			empty = 0
			if ferr := fn(buf[:n]); ferr != nil {
				return ferr
			}
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return io.ErrNoProgress
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}
}

// Registry maps format keys (usually file extensions such as "wav" or
// "mp3") to decoders. Keys are case-insensitive and a leading dot is
// ignored.
type Registry struct {
	codecs map[string]Decoder

	mtx sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[formatKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[formatKey(format)]
	return d, ok
}

// ForPath picks the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (Decoder, string, bool) {
	format := formatKey(filepath.Ext(path))
	d, ok := r.Get(format)

	return d, format, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	formats := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	return formats
}
