package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"nifti-savior/logger"
	"nifti-savior/nifti"
	"nifti-savior/ui"

	"github.com/alexflint/go-arg"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Describe    *DescribeCmd    `arg:"subcommand:describe" help:"print a summary of a header"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"convert between binary, JSON and YAML headers"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the fields of a header"`
		LogLevel    string          `arg:"--log-level,env:NIFTI_LOG_LEVEL" default:"info" help:"debug, info, warn or error"`
		LogFormat   string          `arg:"--log-format,env:NIFTI_LOG_FORMAT" default:"text" help:"text or json"`
	}
	DescribeCmd struct {
		File   string `arg:"positional,required" placeholder:"FILE"`
		Fields bool   `help:"list every field of the header"`
	}
	InteractiveCmd struct {
		File string `arg:"positional,required" placeholder:"FILE"`
	}
	ConvertCmd struct {
		From           string `arg:"required" help:"path to source file" placeholder:"brain.nii"`
		To             string `arg:"required" help:"path to destination file" placeholder:"brain.json"`
		Force          bool   `help:"overwrite the destination file"`
		DropExtensions bool   `arg:"--drop-extensions" help:"write the header without its extensions"`
		BigEndian      bool   `arg:"--big-endian" help:"write binary headers in big-endian order"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read, describe, and convert NIFTI-1 headers.\n",
			"Binary headers (.nii, .hdr, optionally gzipped) convert to JSON or YAML",
			"documents and back, keeping their extensions.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartDescribing(w io.Writer, cmd DescribeCmd) error {
	source, err := ReadSource(cmd.File)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, source.Header.Describe()); err != nil {
		return errors.Wrap(err, "StartDescribing error")
	}
	if cmd.Fields {
		WriteFieldsTable(w, source.Header)
	}
	return nil
}

func WriteFieldsTable(w io.Writer, header *nifti.Header) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"field", "type", "count", "value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(header.Fields())
	table.Render()
}

func StartConverting(log *slog.Logger, cmd ConvertCmd) error {
	if !CheckExistence(cmd.From) {
		return errors.Errorf(`source file "%s" does not exist`, cmd.From)
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf(
			`destination file "%s" exists; run the command again with --force to overwrite it`,
			cmd.To,
		)
	}

	source, err := ReadSource(cmd.From)
	if err != nil {
		return err
	}
	if source.Pixels != nil {
		defer source.Pixels.Close()
	}
	log.Debug(
		"read header",
		"path", cmd.From,
		"swapped", source.Swapped,
		"extensions", len(source.Header.Extensions),
	)

	if cmd.DropExtensions {
		source.Header.Extensions = nil
	}
	written, err := WriteTarget(cmd.To, source, TargetOptions{BigEndian: cmd.BigEndian})
	if err != nil {
		return err
	}
	log.Info("converted header", "from", cmd.From, "to", cmd.To, "bytes", written)
	return nil
}

func StartInteractive(log *slog.Logger, cmd InteractiveCmd) error {
	source, err := ReadSource(cmd.File)
	if err != nil {
		return err
	}
	if source.Pixels != nil {
		source.Pixels.Close()
	}
	log.Debug("starting field browser", "path", cmd.File)
	return ui.Start(cmd.File, source.Header)
}

func Run(args Args, stdout io.Writer, stderr io.Writer) error {
	log, err := logger.New(stderr, args.LogLevel, args.LogFormat)
	if err != nil {
		return err
	}
	switch {
	case args.Describe != nil:
		err = StartDescribing(stdout, *args.Describe)
	case args.Convert != nil:
		err = StartConverting(log, *args.Convert)
	case args.Interactive != nil:
		err = StartInteractive(log, *args.Interactive)
	default:
		err = errors.New("no command given; see --help")
	}
	if err != nil {
		log.Error("command failed", "error", err)
	}
	return err
}

func Start() {
	args := Args{}
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.Fail("missing command: describe, convert or interactive")
	}
	if err := Run(args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
