package nheader

import (
	"math"

	"nifti-savior/ds"
	"nifti-savior/nifti/nschema"

	"github.com/samber/lo"
)

// Struct maps every field of its schema to a Value. Values are stored by
// schema position; a nil entry is a missing field.
type Struct struct {
	schema *nschema.Schema
	values []Value
}

// NewStruct creates a Struct with every field missing.
func NewStruct(schema *nschema.Schema) *Struct {
	return &Struct{
		schema: schema,
		values: make([]Value, schema.Len()),
	}
}

// NewZeroStruct creates a Struct with every field present and zeroed.
func NewZeroStruct(schema *nschema.Schema) *Struct {
	s := NewStruct(schema)
	for index, field := range schema.Fields() {
		s.values[index] = ds.Repeat(field.Count, 0.0)
	}
	return s
}

func (s *Struct) Schema() *nschema.Schema {
	return s.schema
}

func (s *Struct) Has(name string) bool {
	index, ok := s.schema.Index(name)
	return ok && s.values[index] != nil
}

// Get returns a copy of the named value.
func (s *Struct) Get(name string) (Value, bool) {
	index, ok := s.schema.Index(name)
	if !ok || s.values[index] == nil {
		return nil, false
	}
	return ds.ShallowCopy(s.values[index]), true
}

// Scalar returns the first element of the named value, or zero when missing.
func (s *Struct) Scalar(name string) float64 {
	index, ok := s.schema.Index(name)
	if !ok || len(s.values[index]) == 0 {
		return 0
	}
	return s.values[index][0]
}

func (s *Struct) Set(name string, value Value) error {
	index, ok := s.schema.Index(name)
	if !ok {
		return ErrUnknownField{Name: name}
	}
	field := s.schema.Field(index)
	if len(value) != field.Count {
		return ErrCountMismatch{Name: name, Expected: field.Count, Actual: len(value)}
	}
	s.values[index] = ds.ShallowCopy(value)
	return nil
}

func (s *Struct) SetScalar(name string, value float64) error {
	return s.Set(name, Value{value})
}

// SetElement overwrites one element of a present sequence field.
func (s *Struct) SetElement(name string, position int, value float64) error {
	index, ok := s.schema.Index(name)
	if !ok {
		return ErrUnknownField{Name: name}
	}
	if s.values[index] == nil {
		return ErrMissingField{Name: name}
	}
	if position < 0 || position >= len(s.values[index]) {
		return ErrCountMismatch{Name: name, Expected: len(s.values[index]), Actual: position + 1}
	}
	s.values[index][position] = value
	return nil
}

func (s *Struct) Delete(name string) {
	index, ok := s.schema.Index(name)
	if ok {
		s.values[index] = nil
	}
}

// Missing lists the schema fields without a value, in layout order.
func (s *Struct) Missing() []string {
	return lo.FilterMap(
		s.schema.Names(),
		func(name string, index int) (string, bool) {
			return name, s.values[index] == nil
		},
	)
}

func (s *Struct) Clone() *Struct {
	clone := NewStruct(s.schema)
	for index, value := range s.values {
		if value != nil {
			clone.values[index] = ds.ShallowCopy(value)
		}
	}
	return clone
}

// Equal compares field by field; NaN equals NaN so decoded garbage still
// round-trips.
func (s *Struct) Equal(other *Struct, ignored ...string) bool {
	if !s.schema.Equal(other.schema) {
		return false
	}
	for index, name := range s.schema.Names() {
		if lo.Contains(ignored, name) {
			continue
		}
		if !equalValues(s.values[index], other.values[index]) {
			return false
		}
	}
	return true
}

func equalValues(a Value, b Value) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}
	return true
}

// Text reads a char array field up to its first zero byte.
func (s *Struct) Text(name string) string {
	value, _ := s.Get(name)
	bs := make([]byte, 0, len(value))
	for _, element := range value {
		if element == 0 {
			break
		}
		bs = append(bs, byte(element))
	}
	return string(bs)
}

// SetText writes text into a char array field, truncated and zero padded to
// the field's count.
func (s *Struct) SetText(name string, text string) error {
	field, ok := s.schema.Lookup(name)
	if !ok {
		return ErrUnknownField{Name: name}
	}
	value := ds.Repeat(field.Count, 0.0)
	for i := 0; i < len(text) && i < field.Count; i++ {
		value[i] = float64(text[i])
	}
	return s.Set(name, value)
}
