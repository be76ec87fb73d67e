// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/afskdecode/audio"
	"github.com/ik5/afskdecode/formats/internal/intpcm"
	"github.com/ik5/afskdecode/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	// AIFF samples are signed at every depth
	src, err := intpcm.New(dec, int(dec.BitDepth), 0)
	switch {
	case errors.Is(err, pcm.ErrUnsupportedBitDepth):
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	return src, nil
}
