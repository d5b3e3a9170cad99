package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"nifti-savior/nifti"
	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

type (
	DocumentFormat string
	Source         struct {
		Header  *nifti.Header
		Swapped bool
		// Pixels streams what follows vox_offset in a binary source; nil for
		// JSON and YAML documents.
		Pixels io.ReadCloser
	}
	TargetOptions struct {
		BigEndian bool
	}
	readCloser struct {
		io.Reader
		closers []io.Closer
	}
)

const (
	FormatBinary = DocumentFormat("binary")
	FormatJSON   = DocumentFormat("json")
	FormatYAML   = DocumentFormat("yaml")

	// MaxHeaderLength guards against a corrupt vox_offset asking for gigabytes.
	MaxHeaderLength = 64 << 20
)

func (r readCloser) Close() error {
	err := error(nil)
	for _, closer := range r.closers {
		if closeErr := closer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

func IsGzip(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

func FormatOf(path string) DocumentFormat {
	lowered := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch filepath.Ext(lowered) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatBinary
}

func openReader(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `error opening "%s"`, path)
	}
	if !IsGzip(path) {
		return file, nil
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(err, `error reading gzip stream of "%s"`, path)
	}
	return readCloser{Reader: gz, closers: []io.Closer{gz, file}}, nil
}

// ReadHeaderBytes reads the fixed header and, when the blank flag says so, the
// extensions up to vox_offset. Nothing past that is consumed.
func ReadHeaderBytes(r io.Reader) ([]byte, error) {
	fixedLength := nschema.Standard.ByteLength()
	bs := make([]byte, fixedLength)
	if _, err := io.ReadFull(r, bs); err != nil {
		return nil, errors.Wrap(err, "ReadHeaderBytes error reading the fixed header")
	}
	swap, err := nheader.DetectSwap(bs)
	if err != nil {
		return nil, errors.Wrap(err, "ReadHeaderBytes error")
	}
	header, err := nifti.Decode(bs, fixedLength, swap)
	if err != nil {
		return nil, errors.Wrap(err, "ReadHeaderBytes error")
	}
	totalLength := nifti.ExtendedLength(header.Struct)
	if totalLength > MaxHeaderLength {
		return nil, errors.Errorf("ReadHeaderBytes error: vox_offset %d is too large", totalLength)
	}
	rest := make([]byte, totalLength-fixedLength)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, errors.Wrap(err, "ReadHeaderBytes error reading the extensions")
	}
	return append(bs, rest...), nil
}

func ReadSource(path string) (*Source, error) {
	reader, err := openReader(path)
	if err != nil {
		return nil, err
	}
	format := FormatOf(path)
	if format != FormatBinary {
		defer reader.Close()
		bs, err := io.ReadAll(reader)
		if err != nil {
			return nil, errors.Wrapf(err, `error reading "%s"`, path)
		}
		header, err := ParseDocument(bs, format)
		if err != nil {
			return nil, errors.Wrapf(err, `error parsing "%s"`, path)
		}
		return &Source{Header: header}, nil
	}

	bs, err := ReadHeaderBytes(reader)
	if err != nil {
		reader.Close()
		return nil, errors.Wrapf(err, `error reading header of "%s"`, path)
	}
	swap, _ := nheader.DetectSwap(bs)
	header, err := nifti.DecodeBuffer(bs)
	if err != nil {
		reader.Close()
		return nil, errors.Wrapf(err, `error decoding header of "%s"`, path)
	}
	// some writers leave a gap between the extensions and the pixels
	voxOffset := int64(header.Struct.Scalar(nschema.FieldNameVoxOffset))
	if gap := voxOffset - int64(len(bs)); gap > 0 {
		if _, err := io.CopyN(io.Discard, reader, gap); err != nil && !errors.Is(err, io.EOF) {
			reader.Close()
			return nil, errors.Wrapf(err, `error skipping to the pixels of "%s"`, path)
		}
	}
	return &Source{Header: header, Swapped: swap, Pixels: reader}, nil
}

func ParseDocument(bs []byte, format DocumentFormat) (*nifti.Header, error) {
	if format == FormatYAML {
		converted, err := YAMLToJSON(bs)
		if err != nil {
			return nil, err
		}
		bs = converted
	}
	return nifti.FromJSON(bs)
}

func encodeTarget(format DocumentFormat, source *Source, options TargetOptions) ([]byte, error) {
	header := source.Header
	switch format {
	case FormatJSON:
		return header.ToJSON(!header.Schema().Equal(nschema.Standard))
	case FormatYAML:
		bs, err := header.ToJSON(!header.Schema().Equal(nschema.Standard))
		if err != nil {
			return nil, err
		}
		return JSONToYAML(bs)
	}
	swap := options.BigEndian
	if source.Pixels != nil {
		if options.BigEndian && !source.Swapped {
			return nil, errors.New("cannot change the byte order of the pixel data that follows the header")
		}
		swap = source.Swapped
	}
	return header.EncodeWithOptions(nheader.EncodeOptions{KeepExtensions: true, SwapEndian: swap})
}

// WriteTarget writes the header in the format the path asks for. Binary
// targets also receive the pixels of a binary source.
func WriteTarget(path string, source *Source, options TargetOptions) (int64, error) {
	format := FormatOf(path)
	bs, err := encodeTarget(format, source, options)
	if err != nil {
		return 0, errors.Wrap(err, "WriteTarget error")
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, `WriteTarget error creating "%s"`, path)
	}
	var w io.Writer = file
	var gz *gzip.Writer
	if IsGzip(path) {
		gz = gzip.NewWriter(file)
		w = gz
	}

	written, err := writeAll(w, bs, format, source)
	if gz != nil {
		if closeErr := gz.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if closeErr := file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return written, errors.Wrapf(err, `WriteTarget error writing "%s"`, path)
	}
	return written, nil
}

func writeAll(w io.Writer, bs []byte, format DocumentFormat, source *Source) (int64, error) {
	n, err := w.Write(bs)
	written := int64(n)
	if err != nil || format != FormatBinary || source.Pixels == nil {
		return written, err
	}
	copied, err := io.Copy(w, source.Pixels)
	return written + copied, err
}
