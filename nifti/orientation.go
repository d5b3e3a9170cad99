package nifti

import (
	"math"

	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"

	"github.com/pkg/errors"
)

var (
	orientationFieldNames = []string{
		nschema.FieldNameQformCode,
		nschema.FieldNameSformCode,
		nschema.FieldNameQuaternB,
		nschema.FieldNameQuaternC,
		nschema.FieldNameQuaternD,
		nschema.FieldNameQoffsetX,
		nschema.FieldNameQoffsetY,
		nschema.FieldNameQoffsetZ,
		nschema.FieldNameSrowX,
		nschema.FieldNameSrowY,
		nschema.FieldNameSrowZ,
	}
	srowFieldNames = []string{
		nschema.FieldNameSrowX,
		nschema.FieldNameSrowY,
		nschema.FieldNameSrowZ,
	}
)

// CopyOrientationInfo takes the qform and sform of other, plus the handedness
// kept in pixdim[0]. With spacing and an active sform, each srow is rescaled
// so the length of its direction part equals spacing[row], and pixdim[1..3]
// becomes spacing. Rows of zero length and the offset column are left as they are.
//
// h is only modified when every step succeeds.
func (h *Header) CopyOrientationInfo(other *Header, spacing *[3]float64) error {
	target := h.Struct.Clone()
	for _, name := range orientationFieldNames {
		value, ok := other.Struct.Get(name)
		if !ok {
			return errors.Wrap(nheader.ErrMissingField{Name: name}, "Header.CopyOrientationInfo error")
		}
		if err := target.Set(name, value); err != nil {
			return errors.Wrap(err, "Header.CopyOrientationInfo error")
		}
	}
	otherPixdim, ok := other.Struct.Get(nschema.FieldNamePixdim)
	if !ok {
		return errors.Wrap(nheader.ErrMissingField{Name: nschema.FieldNamePixdim}, "Header.CopyOrientationInfo error")
	}
	if err := target.SetElement(nschema.FieldNamePixdim, 0, otherPixdim[0]); err != nil {
		return errors.Wrap(err, "Header.CopyOrientationInfo error")
	}

	if spacing != nil && target.Scalar(nschema.FieldNameSformCode) > 0 {
		if err := rescaleSrows(target, *spacing); err != nil {
			return errors.Wrap(err, "Header.CopyOrientationInfo error")
		}
	}
	h.Struct = target
	return nil
}

func rescaleSrows(s *nheader.Struct, spacing [3]float64) error {
	for i, name := range srowFieldNames {
		row, _ := s.Get(name)
		magnitude := math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2])
		if magnitude == 0 {
			continue
		}
		scale := spacing[i] / magnitude
		for j := 0; j < 3; j++ {
			row[j] *= scale
		}
		if err := s.Set(name, row); err != nil {
			return err
		}
	}
	for i, value := range spacing {
		if err := s.SetElement(nschema.FieldNamePixdim, i+1, value); err != nil {
			return err
		}
	}
	return nil
}
