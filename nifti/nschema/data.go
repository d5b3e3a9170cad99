// Package nschema describes the byte layout of a fixed header region as an
// ordered table of fields.
package nschema

import (
	"nifti-savior/nifti/ntype"
)

type (
	Field struct {
		Name  string              `json:"name"`
		Type  ntype.PrimitiveType `json:"type"`
		Count int                 `json:"count"`
	}
	// Schema is immutable once built; share it freely.
	Schema struct {
		fields     []Field
		offsets    []int
		indexByKey map[string]int
		byteLength int
	}
)

func (f Field) ByteLength() int {
	return f.Count * ntype.WidthOf(f.Type)
}

func (f Field) IsScalar() bool {
	return f.Count == 1
}
