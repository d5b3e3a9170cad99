// Package nifti stores the code to decode and encode NIFTI-1 headers together
// with their extension region.
package nifti

import (
	"nifti-savior/ds"
	"nifti-savior/nifti/nextension"
	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"
	"nifti-savior/nifti/ntype"

	"github.com/pkg/errors"
)

// Header owns a decoded fixed region and the raw bytes of its extension
// region. It is not safe for concurrent mutation.
type Header struct {
	Struct     *nheader.Struct
	Extensions []byte
}

func IsNIFTIFile(bs []byte) bool {
	_, err := nheader.DetectSwap(bs)
	return err == nil
}

// Decode reads a header laid out by the standard schema; see nheader.Decode.
func Decode(bs []byte, totalLength int, swapEndian bool) (*Header, error) {
	return DecodeWithSchema(nschema.Standard, bs, totalLength, swapEndian)
}

func DecodeWithSchema(schema *nschema.Schema, bs []byte, totalLength int, swapEndian bool) (*Header, error) {
	s, extensions, err := nheader.Decode(schema, bs, totalLength, swapEndian)
	if err != nil {
		return nil, err
	}
	return &Header{Struct: s, Extensions: extensions}, nil
}

// DecodeBuffer works out byte order and header length from the buffer
// itself: the extension region is read when the blank flag is raised and
// vox_offset points past the fixed region.
func DecodeBuffer(bs []byte) (*Header, error) {
	swap, err := nheader.DetectSwap(bs)
	if err != nil {
		return nil, errors.Wrap(err, "nifti.DecodeBuffer error")
	}
	fixedLength := nschema.Standard.ByteLength()
	header, err := Decode(bs, fixedLength, swap)
	if err != nil {
		return nil, errors.Wrap(err, "nifti.DecodeBuffer error")
	}
	totalLength := ExtendedLength(header.Struct)
	if totalLength == fixedLength {
		return header, nil
	}
	header, err = Decode(bs, totalLength, swap)
	if err != nil {
		return nil, errors.Wrap(err, "nifti.DecodeBuffer error")
	}
	return header, nil
}

// ExtendedLength is the number of bytes the header and its extensions span
// according to the blank flag and vox_offset.
func ExtendedLength(s *nheader.Struct) int {
	fixedLength := s.Schema().ByteLength()
	voxOffset := int(s.Scalar(nschema.FieldNameVoxOffset))
	if s.Scalar(nschema.FieldNameBlank) == 0 || voxOffset <= fixedLength {
		return fixedLength
	}
	return voxOffset
}

func NewDefault() (*Header, error) {
	s, err := nheader.NewDefault(nschema.Standard)
	if err != nil {
		return nil, err
	}
	return &Header{Struct: s}, nil
}

func (h *Header) Schema() *nschema.Schema {
	return h.Struct.Schema()
}

func (h *Header) Clone() *Header {
	return &Header{
		Struct:     h.Struct.Clone(),
		Extensions: ds.ShallowCopy(h.Extensions),
	}
}

func (h *Header) Encode(keepExtensions bool) ([]byte, error) {
	return h.EncodeWithOptions(nheader.EncodeOptions{KeepExtensions: keepExtensions})
}

func (h *Header) EncodeWithOptions(options nheader.EncodeOptions) ([]byte, error) {
	return nheader.Encode(h.Struct, h.Extensions, options)
}

func (h *Header) ExtensionRecords() []nextension.Record {
	return nextension.Decode(h.Extensions)
}

// SetExtensionRecords replaces the extension region; no records removes it.
func (h *Header) SetExtensionRecords(records []nextension.Record) error {
	bs, err := nextension.Encode(records)
	if err != nil {
		return errors.Wrap(err, "Header.SetExtensionRecords error")
	}
	h.Extensions = bs
	return nil
}

func (h *Header) AppendExtensionRecords(records ...nextension.Record) error {
	return h.SetExtensionRecords(append(h.ExtensionRecords(), records...))
}

// SetDatatype sets datatype from a friendly type name and bitpix to match.
func (h *Header) SetDatatype(name ntype.TypeName) error {
	code, ok := ntype.TypeToCode(name)
	if !ok {
		return ntype.ErrUnknownTypeName{Name: string(name)}
	}
	bitpix, err := ntype.BitsPerElement(code)
	if err != nil {
		return err
	}
	if err := h.Struct.SetScalar(nschema.FieldNameDatatype, float64(code)); err != nil {
		return err
	}
	return h.Struct.SetScalar(nschema.FieldNameBitpix, float64(bitpix))
}
