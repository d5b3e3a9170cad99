package nextension

import (
	"strings"
	"unicode/utf8"

	"nifti-savior/ds"
	"nifti-savior/nifti/lbytes"

	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/charmap"
)

// Decode never fails: anything that is not a JSON object comes back as
// Legacy text. Records are returned in file order. Decoding stops at the end
// of blob, at a zero esize, or when too few bytes remain for a record header;
// a final record claiming more bytes than remain is read up to the end.
func Decode(blob []byte) []Record {
	records := make([]Record, 0)
	reader := lbytes.NewBytesReader(blob)
	for reader.Len() >= HeaderSize {
		esize, _ := reader.ReadUint32()
		if esize < HeaderSize {
			break
		}
		// ecode is not needed to tell records apart
		_, _ = reader.ReadUint32()
		remaining := reader.Len()
		n := int(esize) - HeaderSize
		if n > remaining {
			n = remaining
		}
		raw, _ := reader.ReadBytes(n)
		records = append(records, DecodeText(raw)...)
	}
	return records
}

// DecodeText turns the payload of one record into one or more records. A
// document whose "extensions" key holds an array is flattened: objects become
// Structured, strings become Legacy with their text, nulls are dropped, and
// other values become Legacy holding their JSON rendering.
func DecodeText(raw []byte) []Record {
	text := strings.TrimRight(toUTF8(raw), "\x00 \t\r\n")
	doc := orderedmap.New()
	if err := json.Unmarshal([]byte(text), doc); err != nil {
		return []Record{Legacy{Text: text}}
	}
	value, ok := doc.Get(KeyExtensions)
	if !ok {
		return []Record{toRecord(*doc)}
	}
	switch v := value.(type) {
	case []any:
		elements := lo.Filter(v, func(element any, _ int) bool { return element != nil })
		return lo.Map(
			elements,
			func(element any, _ int) Record { return toRecord(element) },
		)
	case orderedmap.OrderedMap:
		return []Record{toRecord(v)}
	default:
		return []Record{toRecord(*doc)}
	}
}

func toRecord(value any) Record {
	switch v := value.(type) {
	case orderedmap.OrderedMap:
		keys := v.Keys()
		if len(keys) == 1 && keys[0] == KeyLegacy {
			text, _ := v.Get(KeyLegacy)
			if textStr, ok := text.(string); ok {
				return Legacy{Text: textStr}
			}
		}
		v.SetEscapeHTML(false)
		return Structured{Fields: &v}
	case string:
		return Legacy{Text: v}
	default:
		return Legacy{Text: ds.DumpJSON(v)}
	}
}

// toUTF8 reads bytes that are not valid UTF-8 as ISO-8859-1, which older
// producers used for comments, so no byte is lost.
func toUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return string(decoded)
}
