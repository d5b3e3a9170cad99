// Package nheader decodes a fixed header region into a Struct of named values
// and encodes it back, following the layout of a nschema.Schema.
package nheader

import (
	"fmt"
)

type (
	// Value holds one element for a scalar field and Count elements otherwise.
	Value []float64

	ErrTruncatedBuffer struct {
		Caller string
		Need   int
		Have   int
	}
	// ErrMissingField means a Struct and its schema drifted apart; it is a
	// programming error rather than bad input data.
	ErrMissingField struct {
		Name string
	}
	ErrUnknownField struct {
		Name string
	}
	ErrCountMismatch struct {
		Name     string
		Expected int
		Actual   int
	}
	ErrNotNIFTI struct {
		SizeofHdr int32
	}
)

func (r ErrTruncatedBuffer) Error() string {
	return fmt.Sprintf("%s: truncated buffer; need %d bytes, have %d", r.Caller, r.Need, r.Have)
}

func (r ErrMissingField) Error() string {
	return fmt.Sprintf(`missing field "%s"`, r.Name)
}

func (r ErrUnknownField) Error() string {
	return fmt.Sprintf(`unknown field "%s"`, r.Name)
}

func (r ErrCountMismatch) Error() string {
	return fmt.Sprintf(
		`field "%s" expects %d values, got %d`,
		r.Name, r.Expected, r.Actual,
	)
}

func (r ErrNotNIFTI) Error() string {
	return fmt.Sprintf("sizeof_hdr is %d in either byte order, not a NIFTI-1 header", r.SizeofHdr)
}
