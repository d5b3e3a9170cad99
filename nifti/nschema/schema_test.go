package nschema

import (
	"testing"

	"nifti-savior/nifti/ntype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard_ByteLength(t *testing.T) {
	assert.Equal(t, 352, Standard.ByteLength())
	offset, ok := Standard.Offset(FieldNameBlank)
	require.True(t, ok)
	assert.Equal(t, SizeofHdr, offset)
}

func TestStandard_Offsets(t *testing.T) {
	expectedValues := map[string]int{
		FieldNameSizeofHdr:  0,
		FieldNameDim:        40,
		FieldNameDatatype:   70,
		FieldNameBitpix:     72,
		FieldNamePixdim:     76,
		FieldNameVoxOffset:  108,
		FieldNameDescrip:    148,
		FieldNameQformCode:  252,
		FieldNameSformCode:  254,
		FieldNameSrowX:      280,
		FieldNameIntentName: 328,
		FieldNameMagic:      344,
	}
	for name, expected := range expectedValues {
		offset, ok := Standard.Offset(name)
		require.True(t, ok, name)
		assert.Equal(t, expected, offset, name)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := map[string][]Field{
		"duplicated":   {{"a", ntype.Int16, 1}, {"a", ntype.Int16, 1}},
		"empty name":   {{"", ntype.Int16, 1}},
		"zero count":   {{"a", ntype.Int16, 0}},
		"unknown type": {{"a", ntype.Unknown, 1}},
	}
	for reason, fields := range tests {
		_, err := New(fields)
		var errInvalid ErrInvalidField
		assert.ErrorAs(t, err, &errInvalid, reason)
	}
	_, err := New(nil)
	assert.Error(t, err)
}

func TestSchema_Immutable(t *testing.T) {
	fields := []Field{{"a", ntype.Int16, 2}, {"b", ntype.Float64, 1}}
	schema, err := New(fields)
	require.NoError(t, err)
	assert.Equal(t, 12, schema.ByteLength())

	fields[0].Name = "changed"
	returned := schema.Fields()
	returned[1].Count = 100
	assert.Equal(t, []string{"a", "b"}, schema.Names())
	assert.Equal(t, 12, schema.ByteLength())
	assert.Equal(t, 1, schema.Field(1).Count)
}

func TestSchema_Equal(t *testing.T) {
	other := MustNew(standardFields)
	assert.True(t, Standard.Equal(other))
	assert.False(t, Standard.Equal(MustNew([]Field{{"a", ntype.Int8, 1}})))
	assert.False(t, Standard.Equal(nil))
}
