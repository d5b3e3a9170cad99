package nifti

import (
	"testing"

	"nifti-savior/nifti/nextension"
	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"
	"nifti-savior/nifti/ntype"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EndToEndTestSuite struct {
	Headers     []*Header
	NativeBytes [][]byte
	SwapBytes   [][]byte
	R           *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()

	plain, err := NewDefault()
	suite.R.NoError(err)

	anatomical, err := NewDefault()
	suite.R.NoError(err)
	suite.R.NoError(anatomical.SetDatatype("short"))
	suite.R.NoError(anatomical.Struct.Set(nschema.FieldNameDim, nheader.Value{3, 176, 256, 256, 1, 1, 1, 1}))
	suite.R.NoError(anatomical.Struct.Set(nschema.FieldNamePixdim, nheader.Value{1, 1, 0.9375, 0.9375, 2, 0, 0, 0}))
	suite.R.NoError(anatomical.Struct.SetScalar(nschema.FieldNameQformCode, 1))
	suite.R.NoError(anatomical.Struct.SetScalar(nschema.FieldNameQuaternC, 0.5))
	suite.R.NoError(anatomical.Struct.Set(nschema.FieldNameSrowX, nheader.Value{1, 0, 0, -88}))
	suite.R.NoError(anatomical.Struct.SetText(nschema.FieldNameDescrip, "T1 MPRAGE"))
	suite.R.NoError(anatomical.SetExtensionRecords([]nextension.Record{
		nextension.NewStructured("tool", "reorient", "version", "1.2"),
		nextension.Legacy{Text: "acquired 2001"},
	}))

	suite.Headers = []*Header{plain, anatomical}
	suite.NativeBytes = lo.Map(
		suite.Headers,
		func(header *Header, _ int) []byte {
			bs, err := header.Encode(true)
			suite.R.NoError(err)
			return bs
		},
	)
	suite.SwapBytes = lo.Map(
		suite.Headers,
		func(header *Header, _ int) []byte {
			bs, err := header.EncodeWithOptions(nheader.EncodeOptions{KeepExtensions: true, SwapEndian: true})
			suite.R.NoError(err)
			return bs
		},
	)
}

func (suite *EndToEndTestSuite) TestBinaryRoundTrip() {
	for i, bs := range suite.NativeBytes {
		decoded, err := Decode(bs, len(bs), false)
		suite.R.NoError(err)
		suite.R.True(suite.Headers[i].Struct.Equal(decoded.Struct, nschema.FieldNameVoxOffset, nschema.FieldNameBlank))
		suite.R.Equal(suite.Headers[i].Extensions, decoded.Extensions)
		suite.R.Equal(float64(len(bs)), decoded.Struct.Scalar(nschema.FieldNameVoxOffset))
	}
}

func (suite *EndToEndTestSuite) TestDecodeBuffer() {
	for i := range suite.Headers {
		for _, bs := range [][]byte{suite.NativeBytes[i], suite.SwapBytes[i]} {
			// pixel data after the header must not leak into the extensions
			withPixels := append(append([]byte{}, bs...), 1, 2, 3, 4)
			decoded, err := DecodeBuffer(withPixels)
			suite.R.NoError(err)
			suite.R.True(suite.Headers[i].Struct.Equal(decoded.Struct, nschema.FieldNameVoxOffset, nschema.FieldNameBlank))
			suite.R.Equal(suite.Headers[i].Extensions, decoded.Extensions)
		}
	}
}

func (suite *EndToEndTestSuite) TestSwappedEqualsNative() {
	for i := range suite.Headers {
		native, err := Decode(suite.NativeBytes[i], len(suite.NativeBytes[i]), false)
		suite.R.NoError(err)
		swapped, err := Decode(suite.SwapBytes[i], len(suite.SwapBytes[i]), true)
		suite.R.NoError(err)
		suite.R.True(native.Struct.Equal(swapped.Struct))
		suite.R.Equal(native.Extensions, swapped.Extensions)
	}
}

func (suite *EndToEndTestSuite) TestJSONRoundTrip() {
	for _, header := range suite.Headers {
		bs, err := header.ToJSON(false)
		suite.R.NoError(err)
		parsed, err := FromJSON(bs)
		suite.R.NoError(err)
		suite.R.True(header.Struct.Equal(parsed.Struct))
		suite.R.Equal(header.Extensions, parsed.Extensions)

		withSchema, err := header.ToJSON(true)
		suite.R.NoError(err)
		parsed, err = FromJSON(withSchema)
		suite.R.NoError(err)
		suite.R.True(parsed.Schema().Equal(nschema.Standard))
	}
}

func (suite *EndToEndTestSuite) TestExtensionRecords() {
	records := suite.Headers[1].ExtensionRecords()
	suite.R.Equal(
		[]string{`{"tool":"reorient","version":"1.2"}`, `{"legacy":"acquired 2001"}`},
		nextension.Texts(records),
	)
	suite.R.Empty(suite.Headers[0].ExtensionRecords())
}

func (suite *EndToEndTestSuite) TestDescribe() {
	description := suite.Headers[1].Describe()
	for _, expected := range []string{
		"datatype: int16 (4)",
		"bitpix: 16",
		"T1 MPRAGE",
		"quatern: b=0 c=0.5 d=0",
		"srow_x",
		"-88",
		"extensions: 2",
		`"tool":"reorient"`,
	} {
		suite.R.Contains(description, expected)
	}
	suite.R.NotContains(suite.Headers[0].Describe(), "quatern")
}

func (suite *EndToEndTestSuite) TestBitpixFollowsDatatype() {
	header := suite.Headers[1].Clone()
	suite.R.NoError(header.Struct.SetScalar(nschema.FieldNameBitpix, 8))
	bs, err := header.Encode(false)
	suite.R.NoError(err)
	decoded, err := Decode(bs, len(bs), false)
	suite.R.NoError(err)
	suite.R.Equal(float64(16), decoded.Struct.Scalar(nschema.FieldNameBitpix))
	suite.R.Equal(float64(ntype.CodeInt16), decoded.Struct.Scalar(nschema.FieldNameDatatype))
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
