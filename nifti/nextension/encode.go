package nextension

import (
	"nifti-savior/ds"
	"nifti-savior/nifti/lbytes"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type document struct {
	Extensions []Record `json:"extensions"`
}

// Encode packs all records into a single extension record holding
// {"extensions": [...]}, however many records they were decoded from.
// No records give no bytes.
func Encode(records []Record) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}
	text, err := json.MarshalWithOption(
		document{Extensions: records},
		json.DisableHTMLEscape(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "nextension.Encode error")
	}
	esize := ds.NearestDivisibleByM(HeaderSize+len(text), Alignment)

	bs := make([]byte, 0, esize)
	bs = append(bs, lbytes.EncodeValueUint32(uint32(esize))...)
	bs = append(bs, lbytes.EncodeValueUint32(ECodeComment)...)
	bs = append(bs, text...)
	bs = append(bs, lbytes.CreateZeroBytes(esize-len(bs))...)
	return bs, nil
}

// Texts renders each record as one line of JSON, for diagnostics.
func Texts(records []Record) []string {
	texts := make([]string, 0, len(records))
	for _, record := range records {
		texts = append(texts, ds.DumpJSON(record))
	}
	return texts
}
