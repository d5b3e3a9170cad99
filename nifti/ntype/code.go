package ntype

import (
	"fmt"
)

type (
	// Code is the value stored in a header's datatype field.
	Code int16
	// TypeName is a friendly name a caller uses to ask for a Code.
	TypeName string
)

const (
	CodeUint8   = Code(2)
	CodeInt16   = Code(4)
	CodeInt32   = Code(8)
	CodeFloat32 = Code(16)
	CodeFloat64 = Code(64)
	CodeInt8    = Code(256)
	CodeUint16  = Code(512)
	CodeUint32  = Code(768)
)

var (
	typeByCode = map[Code]PrimitiveType{
		CodeUint8:   Uint8,
		CodeInt16:   Int16,
		CodeInt32:   Int32,
		CodeFloat32: Float32,
		CodeFloat64: Float64,
		CodeInt8:    Int8,
		CodeUint16:  Uint16,
		CodeUint32:  Uint32,
	}
	// several friendly names collapse to one code
	codeByName = map[TypeName]Code{
		"uint8":   CodeUint8,
		"uchar":   CodeUint8,
		"int16":   CodeInt16,
		"short":   CodeInt16,
		"int32":   CodeInt32,
		"int":     CodeInt32,
		"float32": CodeFloat32,
		"float":   CodeFloat32,
		"float64": CodeFloat64,
		"double":  CodeFloat64,
		"int8":    CodeInt8,
		"char":    CodeInt8,
		"uint16":  CodeUint16,
		"ushort":  CodeUint16,
		"uint32":  CodeUint32,
		"uint":    CodeUint32,
	}
)

type ErrUnknownFormatCode struct {
	Code int
}

func (r ErrUnknownFormatCode) Error() string {
	return fmt.Sprintf("unknown datatype code %d", r.Code)
}

func CodeToType(code Code) (PrimitiveType, error) {
	t, ok := typeByCode[code]
	if !ok {
		return Unknown, ErrUnknownFormatCode{Code: int(code)}
	}
	return t, nil
}

func TypeToCode(name TypeName) (Code, bool) {
	code, ok := codeByName[name]
	return code, ok
}

// BitsPerElement is the bitpix value a header with datatype code should carry.
func BitsPerElement(code Code) (int, error) {
	t, err := CodeToType(code)
	if err != nil {
		return 0, err
	}
	return WidthOf(t) * 8, nil
}

// Name returns the canonical type name of a supported code.
func (c Code) Name() string {
	t, ok := typeByCode[c]
	if !ok {
		return "unknown"
	}
	return t.String()
}
