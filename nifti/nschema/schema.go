package nschema

import (
	"fmt"

	"nifti-savior/ds"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	ErrInvalidField struct {
		Index  int
		Field  Field
		Reason string
	}
)

func (r ErrInvalidField) Error() string {
	return fmt.Sprintf(`invalid field #%d "%s": %s`, r.Index, r.Field.Name, r.Reason)
}

func New(fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, errors.New("nschema.New error: no fields")
	}
	schema := Schema{
		fields:     ds.ShallowCopy(fields),
		offsets:    make([]int, 0, len(fields)),
		indexByKey: make(map[string]int, len(fields)),
	}
	for index, field := range fields {
		switch {
		case field.Name == "":
			return nil, ErrInvalidField{Index: index, Field: field, Reason: "empty name"}
		case field.Count < 1:
			return nil, ErrInvalidField{Index: index, Field: field, Reason: "count must be positive"}
		case field.ByteLength() == 0:
			return nil, ErrInvalidField{Index: index, Field: field, Reason: "unknown type"}
		}
		if _, existed := schema.indexByKey[field.Name]; existed {
			return nil, ErrInvalidField{Index: index, Field: field, Reason: "duplicated name"}
		}
		schema.indexByKey[field.Name] = index
		schema.offsets = append(schema.offsets, schema.byteLength)
		schema.byteLength += field.ByteLength()
	}
	return &schema, nil
}

func MustNew(fields []Field) *Schema {
	schema, err := New(fields)
	if err != nil {
		panic(errors.Wrap(err, "nschema.MustNew error"))
	}
	return schema
}

func (s *Schema) ByteLength() int {
	return s.byteLength
}

func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns a copy of the table in layout order.
func (s *Schema) Fields() []Field {
	return ds.ShallowCopy(s.fields)
}

func (s *Schema) Field(index int) Field {
	return s.fields[index]
}

func (s *Schema) Index(name string) (int, bool) {
	index, ok := s.indexByKey[name]
	return index, ok
}

func (s *Schema) Lookup(name string) (Field, bool) {
	index, ok := s.indexByKey[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[index], true
}

// Offset is the position of the named field's first byte.
func (s *Schema) Offset(name string) (int, bool) {
	index, ok := s.indexByKey[name]
	if !ok {
		return 0, false
	}
	return s.offsets[index], true
}

func (s *Schema) Names() []string {
	return lo.Map(
		s.fields,
		func(field Field, _ int) string { return field.Name },
	)
}

// Equal reports whether both schemas describe the same layout.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || len(s.fields) != len(other.fields) {
		return false
	}
	return lo.EveryBy(
		lo.Zip2(s.fields, other.fields),
		func(tuple lo.Tuple2[Field, Field]) bool { return tuple.A == tuple.B },
	)
}
