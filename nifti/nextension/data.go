// Package nextension encodes and decodes the variable length region that
// follows a NIFTI-1 header: a run of size prefixed records carrying JSON text.
package nextension

import (
	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
)

type (
	// Record is either Legacy or Structured.
	Record interface {
		json.Marshaler
		isRecord()
	}
	// Legacy keeps text that could not be read as a JSON object.
	Legacy struct {
		Text string
	}
	Structured struct {
		Fields *orderedmap.OrderedMap
	}
)

const (
	// HeaderSize covers esize and ecode.
	HeaderSize = 8
	// Alignment of esize required by NIFTI-1.
	Alignment = 16
	// ECodeComment is the registered NIFTI-1 code for free text comments.
	ECodeComment = 6

	KeyExtensions = "extensions"
	KeyLegacy     = "legacy"
)

func (Legacy) isRecord()     {}
func (Structured) isRecord() {}

func (r Legacy) MarshalJSON() ([]byte, error) {
	lhm := orderedmap.New()
	lhm.SetEscapeHTML(false)
	lhm.Set(KeyLegacy, r.Text)
	return lhm.MarshalJSON()
}

func (r Structured) MarshalJSON() ([]byte, error) {
	if r.Fields == nil {
		return []byte("{}"), nil
	}
	return r.Fields.MarshalJSON()
}

// NewStructured builds a record from key/value pairs, keeping their order.
func NewStructured(pairs ...any) Structured {
	lhm := orderedmap.New()
	lhm.SetEscapeHTML(false)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		lhm.Set(key, pairs[i+1])
	}
	return Structured{Fields: lhm}
}
