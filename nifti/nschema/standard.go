package nschema

import (
	"nifti-savior/nifti/ntype"
)

const (
	FieldNameSizeofHdr     = "sizeof_hdr"
	FieldNameDataType      = "data_type"
	FieldNameDBName        = "db_name"
	FieldNameExtents       = "extents"
	FieldNameSessionError  = "session_error"
	FieldNameRegular       = "regular"
	FieldNameDimInfo       = "dim_info"
	FieldNameDim           = "dim"
	FieldNameIntentP1      = "intent_p1"
	FieldNameIntentP2      = "intent_p2"
	FieldNameIntentP3      = "intent_p3"
	FieldNameIntentCode    = "intent_code"
	FieldNameDatatype      = "datatype"
	FieldNameBitpix        = "bitpix"
	FieldNameSliceStart    = "slice_start"
	FieldNamePixdim        = "pixdim"
	FieldNameVoxOffset     = "vox_offset"
	FieldNameSclSlope      = "scl_slope"
	FieldNameSclInter      = "scl_inter"
	FieldNameSliceEnd      = "slice_end"
	FieldNameSliceCode     = "slice_code"
	FieldNameXYZTUnits     = "xyzt_units"
	FieldNameCalMax        = "cal_max"
	FieldNameCalMin        = "cal_min"
	FieldNameSliceDuration = "slice_duration"
	FieldNameToffset       = "toffset"
	FieldNameGLMax         = "glmax"
	FieldNameGLMin         = "glmin"
	FieldNameDescrip       = "descrip"
	FieldNameAuxFile       = "aux_file"
	FieldNameQformCode     = "qform_code"
	FieldNameSformCode     = "sform_code"
	FieldNameQuaternB      = "quatern_b"
	FieldNameQuaternC      = "quatern_c"
	FieldNameQuaternD      = "quatern_d"
	FieldNameQoffsetX      = "qoffset_x"
	FieldNameQoffsetY      = "qoffset_y"
	FieldNameQoffsetZ      = "qoffset_z"
	FieldNameSrowX         = "srow_x"
	FieldNameSrowY         = "srow_y"
	FieldNameSrowZ         = "srow_z"
	FieldNameIntentName    = "intent_name"
	FieldNameMagic         = "magic"
	// FieldNameBlank is the extension flag that follows the 348 byte header.
	FieldNameBlank = "blank"
)

const (
	// SizeofHdr is the value of sizeof_hdr; it excludes the extension flag.
	SizeofHdr = 348
)

var standardFields = []Field{
	{FieldNameSizeofHdr, ntype.Int32, 1},
	{FieldNameDataType, ntype.Uint8, 10},
	{FieldNameDBName, ntype.Uint8, 18},
	{FieldNameExtents, ntype.Int32, 1},
	{FieldNameSessionError, ntype.Int16, 1},
	{FieldNameRegular, ntype.Uint8, 1},
	{FieldNameDimInfo, ntype.Uint8, 1},
	{FieldNameDim, ntype.Int16, 8},
	{FieldNameIntentP1, ntype.Float32, 1},
	{FieldNameIntentP2, ntype.Float32, 1},
	{FieldNameIntentP3, ntype.Float32, 1},
	{FieldNameIntentCode, ntype.Int16, 1},
	{FieldNameDatatype, ntype.Int16, 1},
	{FieldNameBitpix, ntype.Int16, 1},
	{FieldNameSliceStart, ntype.Int16, 1},
	{FieldNamePixdim, ntype.Float32, 8},
	{FieldNameVoxOffset, ntype.Float32, 1},
	{FieldNameSclSlope, ntype.Float32, 1},
	{FieldNameSclInter, ntype.Float32, 1},
	{FieldNameSliceEnd, ntype.Int16, 1},
	{FieldNameSliceCode, ntype.Uint8, 1},
	{FieldNameXYZTUnits, ntype.Uint8, 1},
	{FieldNameCalMax, ntype.Float32, 1},
	{FieldNameCalMin, ntype.Float32, 1},
	{FieldNameSliceDuration, ntype.Float32, 1},
	{FieldNameToffset, ntype.Float32, 1},
	{FieldNameGLMax, ntype.Int32, 1},
	{FieldNameGLMin, ntype.Int32, 1},
	{FieldNameDescrip, ntype.Uint8, 80},
	{FieldNameAuxFile, ntype.Uint8, 24},
	{FieldNameQformCode, ntype.Int16, 1},
	{FieldNameSformCode, ntype.Int16, 1},
	{FieldNameQuaternB, ntype.Float32, 1},
	{FieldNameQuaternC, ntype.Float32, 1},
	{FieldNameQuaternD, ntype.Float32, 1},
	{FieldNameQoffsetX, ntype.Float32, 1},
	{FieldNameQoffsetY, ntype.Float32, 1},
	{FieldNameQoffsetZ, ntype.Float32, 1},
	{FieldNameSrowX, ntype.Float32, 4},
	{FieldNameSrowY, ntype.Float32, 4},
	{FieldNameSrowZ, ntype.Float32, 4},
	{FieldNameIntentName, ntype.Uint8, 16},
	{FieldNameMagic, ntype.Uint8, 4},
	{FieldNameBlank, ntype.Uint8, 4},
}

// Standard is the NIFTI-1 single file layout: the 348 byte header followed by
// the 4 byte extension flag.
var Standard = MustNew(standardFields)
