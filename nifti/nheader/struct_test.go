package nheader

import (
	"math"
	"testing"

	"nifti-savior/nifti/nschema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_NewStruct(t *testing.T) {
	s := NewStruct(nschema.Standard)
	assert.Equal(t, nschema.Standard.Names(), s.Missing())
	assert.False(t, s.Has(nschema.FieldNameDim))

	zero := NewZeroStruct(nschema.Standard)
	assert.Empty(t, zero.Missing())
	dim, ok := zero.Get(nschema.FieldNameDim)
	require.True(t, ok)
	assert.Len(t, dim, 8)
}

func TestStruct_Set(t *testing.T) {
	s := NewStruct(nschema.Standard)

	var errUnknown ErrUnknownField
	assert.ErrorAs(t, s.SetScalar("nope", 1), &errUnknown)

	var errCount ErrCountMismatch
	assert.ErrorAs(t, s.Set(nschema.FieldNameDim, Value{1, 2}), &errCount)
	assert.Equal(t, 8, errCount.Expected)

	value := Value{1, 2, 3, 4}
	require.NoError(t, s.Set(nschema.FieldNameSrowX, value))
	value[0] = 100
	stored, _ := s.Get(nschema.FieldNameSrowX)
	assert.Equal(t, Value{1, 2, 3, 4}, stored)

	stored[1] = 100
	assert.Equal(t, float64(2), valueOf(s, nschema.FieldNameSrowX)[1])
}

func TestStruct_SetElement(t *testing.T) {
	s := NewZeroStruct(nschema.Standard)
	require.NoError(t, s.SetElement(nschema.FieldNamePixdim, 2, 0.75))
	assert.Equal(t, 0.75, valueOf(s, nschema.FieldNamePixdim)[2])
	assert.Error(t, s.SetElement(nschema.FieldNamePixdim, 8, 1))

	s.Delete(nschema.FieldNamePixdim)
	var errMissing ErrMissingField
	assert.ErrorAs(t, s.SetElement(nschema.FieldNamePixdim, 0, 1), &errMissing)
}

func TestStruct_CloneEqual(t *testing.T) {
	s, err := NewDefault(nschema.Standard)
	require.NoError(t, err)
	clone := s.Clone()
	assert.True(t, s.Equal(clone))

	require.NoError(t, clone.SetScalar(nschema.FieldNameSclSlope, math.NaN()))
	assert.False(t, s.Equal(clone))
	assert.True(t, s.Equal(clone, nschema.FieldNameSclSlope))
	assert.True(t, clone.Equal(clone.Clone()))
}

func TestStruct_Text(t *testing.T) {
	s := NewZeroStruct(nschema.Standard)
	require.NoError(t, s.SetText(nschema.FieldNameIntentName, "a name longer than sixteen"))
	assert.Equal(t, "a name longer th", s.Text(nschema.FieldNameIntentName))
	assert.Equal(t, "", s.Text(nschema.FieldNameAuxFile))
	assert.Error(t, s.SetText("nope", "x"))
}

func TestNewDefault(t *testing.T) {
	s, err := NewDefault(nschema.Standard)
	require.NoError(t, err)
	assert.Empty(t, s.Missing())
	assert.Equal(t, float64(nschema.SizeofHdr), s.Scalar(nschema.FieldNameSizeofHdr))
	assert.Equal(t, float64(8), s.Scalar(nschema.FieldNameBitpix))
	assert.Equal(t, float64(352), s.Scalar(nschema.FieldNameVoxOffset))
	assert.Equal(t, Value{0, 0, 1, 0}, valueOf(s, nschema.FieldNameSrowZ))
	assert.Equal(t, MagicSingleFile, s.Text(nschema.FieldNameMagic))
}
