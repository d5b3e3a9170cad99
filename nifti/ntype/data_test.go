package ntype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthOf(t *testing.T) {
	expectedValues := map[PrimitiveType]int{
		Uint8:   1,
		Int8:    1,
		Uint16:  2,
		Int16:   2,
		Uint32:  4,
		Int32:   4,
		Float32: 4,
		Float64: 8,
		Unknown: 0,
	}
	for primitiveType, width := range expectedValues {
		assert.Equal(t, width, WidthOf(primitiveType), primitiveType.String())
	}
}

func TestParsePrimitiveType(t *testing.T) {
	parsed, err := ParsePrimitiveType("float32")
	require.NoError(t, err)
	assert.Equal(t, Float32, parsed)

	parsed, err = ParsePrimitiveType(" Short ")
	require.NoError(t, err)
	assert.Equal(t, Int16, parsed)

	_, err = ParsePrimitiveType("complex64")
	var errUnknown ErrUnknownTypeName
	assert.ErrorAs(t, err, &errUnknown)
}

func TestPrimitiveType_Text(t *testing.T) {
	bs, err := Uint16.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("uint16"), bs)

	var primitiveType PrimitiveType
	require.NoError(t, primitiveType.UnmarshalText([]byte("double")))
	assert.Equal(t, Float64, primitiveType)

	_, err = Unknown.MarshalText()
	assert.Error(t, err)
}
