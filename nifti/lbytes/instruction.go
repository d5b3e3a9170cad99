package lbytes

import (
	"nifti-savior/nifti/ntype"

	"github.com/pkg/errors"
)

type (
	Instruction[T any] struct {
		Key          string
		ReadFunction ReadFunction[T]
	}
	ReadFunction[T any] func() (T, error)
)

// ExecuteInstructions runs the read functions in order and collects their
// results, so a fixed layout can be declared as a table instead of code.
func ExecuteInstructions[T any](instructions []Instruction[T]) ([]T, error) {
	results := make([]T, 0, len(instructions))
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}

func CreateElementsReadFunction(reader *Reader, t ntype.PrimitiveType, count int) ReadFunction[[]float64] {
	return func() ([]float64, error) {
		return reader.ReadElements(t, count)
	}
}

func CreateNBytesReadFunction(reader *Reader, n int) ReadFunction[[]byte] {
	return func() ([]byte, error) {
		return reader.ReadBytes(n)
	}
}
