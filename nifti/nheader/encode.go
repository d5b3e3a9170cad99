package nheader

import (
	"nifti-savior/ds"
	"nifti-savior/nifti/lbytes"
	"nifti-savior/nifti/nschema"
)

type EncodeOptions struct {
	// KeepExtensions appends the raw extension region and raises the blank flag.
	// Empty extensions are dropped either way.
	KeepExtensions bool
	// SwapEndian writes every multi-byte element in big-endian order.
	SwapEndian bool
}

// EncodedLength is the size Encode produces for the given extensions.
func EncodedLength(schema *nschema.Schema, extensions []byte, options EncodeOptions) int {
	totalLength := schema.ByteLength()
	if options.KeepExtensions && len(extensions) > 0 {
		totalLength += len(extensions)
	}
	return totalLength
}

// Encode writes s in schema order. vox_offset is set to the encoded length and
// blank to the extension flag; s itself is never modified.
func Encode(s *Struct, extensions []byte, options EncodeOptions) ([]byte, error) {
	if missing := s.Missing(); len(missing) > 0 {
		return nil, ErrMissingField{Name: missing[0]}
	}

	keepExtensions := options.KeepExtensions && len(extensions) > 0
	totalLength := EncodedLength(s.schema, extensions, options)
	overrides := map[string]Value{
		nschema.FieldNameVoxOffset: {float64(totalLength)},
		nschema.FieldNameBlank:     createExtensionFlag(s.schema, keepExtensions),
	}

	bs := make([]byte, 0, totalLength)
	for index, field := range s.schema.Fields() {
		value := s.values[index]
		if override, ok := overrides[field.Name]; ok && len(override) == field.Count {
			value = override
		}
		if len(value) != field.Count {
			return nil, ErrCountMismatch{Name: field.Name, Expected: field.Count, Actual: len(value)}
		}
		bs = append(bs, lbytes.EncodeElements(field.Type, value, options.SwapEndian)...)
	}
	if keepExtensions {
		bs = append(bs, extensions...)
	}
	return bs, nil
}

func createExtensionFlag(schema *nschema.Schema, keepExtensions bool) Value {
	field, ok := schema.Lookup(nschema.FieldNameBlank)
	if !ok {
		return nil
	}
	flag := ds.Repeat(field.Count, 0.0)
	if keepExtensions {
		flag[0] = 1
	}
	return flag
}
