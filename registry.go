// SPDX-License-Identifier: EPL-2.0

package afskdecode

import (
	"github.com/ik5/afskdecode/audio"
	"github.com/ik5/afskdecode/formats/aiff"
	"github.com/ik5/afskdecode/formats/mp3"
	"github.com/ik5/afskdecode/formats/vorbis"
	"github.com/ik5/afskdecode/formats/wav"
)

// DefaultRegistry maps the usual file extensions to the bundled decoders.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}
