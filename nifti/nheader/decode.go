package nheader

import (
	"nifti-savior/ds"
	"nifti-savior/nifti/lbytes"
	"nifti-savior/nifti/nschema"
	"nifti-savior/nifti/ntype"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Decode reads the fixed region described by schema from the first totalLength
// bytes of bs. Bytes between the end of the fixed region and totalLength are
// returned verbatim as the raw extension region; nil when there are none.
//
// With swapEndian every multi-byte element is reversed before it is
// interpreted. bitpix is recomputed from datatype when the two disagree.
func Decode(schema *nschema.Schema, bs []byte, totalLength int, swapEndian bool) (*Struct, []byte, error) {
	if totalLength < schema.ByteLength() || len(bs) < totalLength {
		err := ErrTruncatedBuffer{
			Caller: "nheader.Decode",
			Need:   lo.Max([]int{totalLength, schema.ByteLength()}),
			Have:   lo.Min([]int{totalLength, len(bs)}),
		}
		return nil, nil, err
	}

	reader := lbytes.NewSwappedReader(bs[:totalLength], swapEndian)
	instructions := lo.Map(
		schema.Fields(),
		func(field nschema.Field, _ int) lbytes.Instruction[[]float64] {
			return lbytes.Instruction[[]float64]{
				Key:          field.Name,
				ReadFunction: lbytes.CreateElementsReadFunction(reader, field.Type, field.Count),
			}
		},
	)
	values, err := lbytes.ExecuteInstructions(instructions)
	if err != nil {
		err := errors.Wrap(err, "nheader.Decode error")
		return nil, nil, err
	}
	s := NewStruct(schema)
	for index, value := range values {
		s.values[index] = value
	}

	if err := RepairBitpix(s); err != nil {
		err := errors.Wrap(err, "nheader.Decode error")
		return nil, nil, err
	}

	var extensions []byte
	if offset := reader.Offset(); totalLength > offset {
		extensions = ds.ShallowCopy(bs[offset:totalLength])
	}
	return s, extensions, nil
}

// RepairBitpix treats datatype as authoritative and overwrites bitpix when
// it disagrees. Schemas without either field are left untouched.
func RepairBitpix(s *Struct) error {
	if !s.Has(nschema.FieldNameDatatype) || !s.Has(nschema.FieldNameBitpix) {
		return nil
	}
	code := ntype.Code(int16(s.Scalar(nschema.FieldNameDatatype)))
	bitpix, err := ntype.BitsPerElement(code)
	if err != nil {
		return err
	}
	if s.Scalar(nschema.FieldNameBitpix) != float64(bitpix) {
		return s.SetScalar(nschema.FieldNameBitpix, float64(bitpix))
	}
	return nil
}

// DetectSwap tells whether a buffer starting with a NIFTI-1 header was written
// in the other byte order, by checking which reading of sizeof_hdr gives 348.
func DetectSwap(bs []byte) (bool, error) {
	if len(bs) < 4 {
		return false, ErrTruncatedBuffer{Caller: "nheader.DetectSwap", Need: 4, Have: len(bs)}
	}
	for _, swap := range []bool{false, true} {
		sizeofHdr, err := lbytes.NewSwappedReader(bs[:4], swap).ReadElement(ntype.Int32)
		if err != nil {
			return false, err
		}
		if sizeofHdr == nschema.SizeofHdr {
			return swap, nil
		}
	}
	native, _ := lbytes.NewBytesReader(bs[:4]).ReadElement(ntype.Int32)
	return false, ErrNotNIFTI{SizeofHdr: int32(native)}
}
