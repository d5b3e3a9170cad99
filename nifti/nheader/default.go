package nheader

import (
	"nifti-savior/nifti/nschema"
	"nifti-savior/nifti/ntype"

	"github.com/pkg/errors"
)

const (
	MagicSingleFile = "n+1"
	MagicPairFile   = "ni1"
)

// NewDefault creates a 1x1x1 uint8 NIFTI-1 single file header with unit
// spacing and an identity sform. Fields the schema does not declare are
// skipped, so any schema sharing the standard names can use it.
func NewDefault(schema *nschema.Schema) (*Struct, error) {
	s := NewZeroStruct(schema)
	bitpix, _ := ntype.BitsPerElement(ntype.CodeUint8)

	scalars := map[string]float64{
		nschema.FieldNameSizeofHdr: nschema.SizeofHdr,
		nschema.FieldNameRegular:   'r',
		nschema.FieldNameDatatype:  float64(ntype.CodeUint8),
		nschema.FieldNameBitpix:    float64(bitpix),
		nschema.FieldNameVoxOffset: float64(schema.ByteLength()),
		nschema.FieldNameSclSlope:  1,
		nschema.FieldNameSformCode: 1,
		nschema.FieldNameQformCode: 0,
		// millimetres and seconds
		nschema.FieldNameXYZTUnits: 10,
	}
	sequences := map[string]Value{
		nschema.FieldNameDim:    {3, 1, 1, 1, 1, 1, 1, 1},
		nschema.FieldNamePixdim: {1, 1, 1, 1, 1, 1, 1, 1},
		nschema.FieldNameSrowX:  {1, 0, 0, 0},
		nschema.FieldNameSrowY:  {0, 1, 0, 0},
		nschema.FieldNameSrowZ:  {0, 0, 1, 0},
	}
	for name, value := range scalars {
		if !s.Has(name) {
			continue
		}
		if err := s.SetScalar(name, value); err != nil {
			return nil, errors.Wrap(err, "nheader.NewDefault error")
		}
	}
	for name, value := range sequences {
		if !s.Has(name) {
			continue
		}
		if err := s.Set(name, value); err != nil {
			return nil, errors.Wrap(err, "nheader.NewDefault error")
		}
	}
	if s.Has(nschema.FieldNameMagic) {
		if err := s.SetText(nschema.FieldNameMagic, MagicSingleFile); err != nil {
			return nil, errors.Wrap(err, "nheader.NewDefault error")
		}
	}
	return s, nil
}
