// Package lbytes reads and writes the little-endian primitives a NIFTI header
// is made of, reversing each element when the buffer has the other byte order.
package lbytes

import (
	"bytes"
	"io"

	"nifti-savior/ds"
	"nifti-savior/nifti/ntype"

	"github.com/pkg/errors"
)

type (
	Reader struct {
		bytes.Reader
		// Swap reverses every multi-byte element before it is interpreted.
		Swap bool
	}
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func NewSwappedReader(bs []byte, swap bool) *Reader {
	reader := NewBytesReader(bs)
	reader.Swap = swap
	return reader
}

// Offset is the number of bytes consumed so far.
func (b *Reader) Offset() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

// ReadUint32 always reads little-endian, ignoring Swap.
func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(ntype.DecodeElement(ntype.Uint32, bs)), nil
}

func (b *Reader) ReadElement(t ntype.PrimitiveType) (float64, error) {
	values, err := b.ReadElements(t, 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

func (b *Reader) ReadElements(t ntype.PrimitiveType, count int) ([]float64, error) {
	width := ntype.WidthOf(t)
	if width == 0 {
		return nil, ntype.ErrUnknownTypeName{Name: t.String()}
	}
	bs, err := b.ReadBytes(width * count)
	if err != nil {
		err := errors.Wrapf(err, "ReadElements error reading %d x %s", count, t)
		return nil, err
	}
	values := make([]float64, 0, count)
	for _, chunk := range ds.MakeChunks(bs, width) {
		if b.Swap {
			Reverse(chunk)
		}
		values = append(values, ntype.DecodeElement(t, chunk))
	}
	return values, nil
}
