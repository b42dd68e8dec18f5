// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"io"
	"sync"

	"github.com/ik5/entrain/legacy"
)

// Decoder builds a legacy envelope from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*legacy.BinauralEnvelope, error)
}

// Encoder writes a legacy envelope to w.
type Encoder interface {
	Encode(w io.Writer, be *legacy.BinauralEnvelope) error
}

// Registry for decoders by format key (e.g., "hbl", "hbs", "hbx").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
