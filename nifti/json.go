package nifti

import (
	"fmt"
	"math"

	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"

	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	FormatMarker = "nifti-header/1"
)

type (
	jsonForm struct {
		Format     string                 `json:"format"`
		Header     *orderedmap.OrderedMap `json:"header"`
		Schema     []nschema.Field        `json:"schema,omitempty"`
		Extensions []byte                 `json:"extensions,omitempty"`
	}
	ErrBadFormatMarker struct {
		Expected string
		Actual   string
	}
	ErrBadValue struct {
		Name  string
		Value any
	}
)

func (r ErrBadFormatMarker) Error() string {
	return fmt.Sprintf(`expected format "%s"; got "%s"`, r.Expected, r.Actual)
}

func (r ErrBadValue) Error() string {
	return fmt.Sprintf(`field "%s" holds "%v"; expected a number or an array of numbers`, r.Name, r.Value)
}

// ToJSON writes the text form of h. The schema is embedded when asked for;
// without it the standard schema is assumed on the way back.
func (h *Header) ToJSON(includeSchema bool) ([]byte, error) {
	lhm := orderedmap.New()
	for _, field := range h.Schema().Fields() {
		value, ok := h.Struct.Get(field.Name)
		if !ok {
			return nil, nheader.ErrMissingField{Name: field.Name}
		}
		if field.IsScalar() {
			lhm.Set(field.Name, toJSONNumber(value[0]))
		} else {
			lhm.Set(field.Name, lo.Map(value, func(v float64, _ int) any { return toJSONNumber(v) }))
		}
	}
	form := jsonForm{
		Format:     FormatMarker,
		Header:     lhm,
		Extensions: h.Extensions,
	}
	if includeSchema {
		form.Schema = h.Schema().Fields()
	}
	bs, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "Header.ToJSON error")
	}
	return bs, nil
}

func (h Header) MarshalJSON() ([]byte, error) {
	return h.ToJSON(!h.Schema().Equal(nschema.Standard))
}

// FromJSON reads the text form written by ToJSON.
func FromJSON(bs []byte) (*Header, error) {
	form := jsonForm{}
	if err := json.Unmarshal(bs, &form); err != nil {
		return nil, errors.Wrap(err, "nifti.FromJSON error")
	}
	if form.Format != FormatMarker {
		return nil, ErrBadFormatMarker{Expected: FormatMarker, Actual: form.Format}
	}

	schema := nschema.Standard
	if len(form.Schema) > 0 {
		customSchema, err := nschema.New(form.Schema)
		if err != nil {
			return nil, errors.Wrap(err, "nifti.FromJSON error")
		}
		schema = customSchema
	}

	s := nheader.NewStruct(schema)
	if form.Header != nil {
		for _, key := range form.Header.Keys() {
			raw, _ := form.Header.Get(key)
			value, err := toValue(key, raw)
			if err != nil {
				return nil, errors.Wrap(err, "nifti.FromJSON error")
			}
			if err := s.Set(key, value); err != nil {
				return nil, errors.Wrap(err, "nifti.FromJSON error")
			}
		}
	}
	if missing := s.Missing(); len(missing) > 0 {
		return nil, errors.Wrap(nheader.ErrMissingField{Name: missing[0]}, "nifti.FromJSON error")
	}
	return &Header{Struct: s, Extensions: form.Extensions}, nil
}

// UnmarshalJSON leaves h untouched when bs cannot be read.
func (h *Header) UnmarshalJSON(bs []byte) error {
	parsed, err := FromJSON(bs)
	if err != nil {
		return err
	}
	*h = *parsed
	return nil
}

// Non-finite values have no JSON number form and travel as these strings.
const (
	jsonNaN         = "NaN"
	jsonInfinity    = "Infinity"
	jsonNegInfinity = "-Infinity"
)

func toJSONNumber(v float64) any {
	switch {
	case math.IsNaN(v):
		return jsonNaN
	case math.IsInf(v, 1):
		return jsonInfinity
	case math.IsInf(v, -1):
		return jsonNegInfinity
	}
	return v
}

func fromJSONNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		switch v {
		case jsonNaN:
			return math.NaN(), true
		case jsonInfinity:
			return math.Inf(1), true
		case jsonNegInfinity:
			return math.Inf(-1), true
		}
	}
	return 0, false
}

func toValue(name string, raw any) (nheader.Value, error) {
	if elements, ok := raw.([]any); ok {
		value := make(nheader.Value, 0, len(elements))
		for _, element := range elements {
			number, ok := fromJSONNumber(element)
			if !ok {
				return nil, ErrBadValue{Name: name, Value: raw}
			}
			value = append(value, number)
		}
		return value, nil
	}
	number, ok := fromJSONNumber(raw)
	if !ok {
		return nil, ErrBadValue{Name: name, Value: raw}
	}
	return nheader.Value{number}, nil
}
