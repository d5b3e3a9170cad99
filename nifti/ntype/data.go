// Package ntype holds the primitive element types a NIFTI header field can be
// made of, and the table between those types and the header's datatype codes.
package ntype

import (
	"fmt"
	"strings"
)

type (
	PrimitiveType int
)

const (
	Unknown PrimitiveType = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Float32
	Float64
)

var (
	widthByType = map[PrimitiveType]int{
		Uint8:   1,
		Int8:    1,
		Uint16:  2,
		Int16:   2,
		Uint32:  4,
		Int32:   4,
		Float32: 4,
		Float64: 8,
	}
	nameByType = map[PrimitiveType]string{
		Uint8:   "uint8",
		Int8:    "int8",
		Uint16:  "uint16",
		Int16:   "int16",
		Uint32:  "uint32",
		Int32:   "int32",
		Float32: "float32",
		Float64: "float64",
	}
)

// WidthOf returns the number of bytes one element of t occupies.
// Unknown has a width of zero.
func WidthOf(t PrimitiveType) int {
	return widthByType[t]
}

func (t PrimitiveType) String() string {
	name, ok := nameByType[t]
	if !ok {
		return fmt.Sprintf("unknown(%d)", int(t))
	}
	return name
}

func (t PrimitiveType) IsFloat() bool {
	return t == Float32 || t == Float64
}

type ErrUnknownTypeName struct {
	Name string
}

func (r ErrUnknownTypeName) Error() string {
	return fmt.Sprintf(`unknown primitive type name "%s"`, r.Name)
}

// ParsePrimitiveType accepts the canonical names returned by String as well as
// the friendly aliases of the code table ("short", "float", ...).
func ParsePrimitiveType(s string) (PrimitiveType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, typeName := range nameByType {
		if typeName == name {
			return t, nil
		}
	}
	code, ok := TypeToCode(TypeName(name))
	if ok {
		return CodeToType(code)
	}
	return Unknown, ErrUnknownTypeName{Name: s}
}

func (t PrimitiveType) MarshalText() ([]byte, error) {
	if _, ok := nameByType[t]; !ok {
		return nil, ErrUnknownTypeName{Name: t.String()}
	}
	return []byte(t.String()), nil
}

func (t *PrimitiveType) UnmarshalText(text []byte) error {
	parsed, err := ParsePrimitiveType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
