package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"plt-reader/ds"
	"plt-reader/plt"
	"plt-reader/ui"
)

type (
	Args struct {
		Decode   *DecodeCmd `arg:"subcommand:decode" help:"print the header of a PLT file as JSON"`
		View     *ViewCmd   `arg:"subcommand:view" help:"browse the header of a PLT file"`
		LogLevel string     `arg:"--log-level,env:PLT_LOG_LEVEL" default:"warn" help:"debug, info, warn or error"`
	}
	DecodeCmd struct {
		From  string `arg:"positional,required" help:"path to a .plt file, plain, gzip or zstd" placeholder:"FILE"`
		To    string `help:"write JSON to this file instead of stdout" placeholder:"FILE"`
		Force bool   `help:"overwrite the destination file"`
		Debug bool   `help:"dump the raw header struct"`
	}
	ViewCmd struct {
		From string `arg:"positional,required" help:"path to a .plt file, plain, gzip or zstd" placeholder:"FILE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to read the header of Tecplot binary (PLT) files:",
			"magic number, title, variable names and zone markers.",
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

// LoadPLT reads the file at path, inflating it when compressed, and makes sure
// it starts with a PLT magic number.
func LoadPLT(path string) ([]byte, error) {
	if !CheckExistence(path) {
		return nil, fmt.Errorf(`LoadPLT error: source file "%s" does not exist`, path)
	}
	bs, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	if !plt.IsPLTFile(bs) {
		n := len(bs)
		if n > 8 {
			n = 8
		}
		return nil, fmt.Errorf(`LoadPLT error: "%s" is not a PLT file (starts with %q)`, path, bs[:n])
	}
	return bs, nil
}

func RunDecode(cmd DecodeCmd, logger *slog.Logger) error {
	if cmd.To != "" && CheckExistence(cmd.To) && !cmd.Force {
		return fmt.Errorf(`RunDecode error: destination "%s" exists, use --force to overwrite it`, cmd.To)
	}
	bs, err := LoadPLT(cmd.From)
	if err != nil {
		return err
	}
	logger.Debug("loaded file", "path", cmd.From, "size", len(bs))

	header, err := plt.DecodeHeader(bs)
	if err != nil {
		return errors.Wrap(err, "RunDecode error")
	}
	for _, issue := range header.Issues {
		logger.Warn("header decoded partially", "path", cmd.From, "issue", issue.Error())
	}
	logger.Info(
		"decoded header",
		"path", cmd.From,
		"title", header.Title,
		"num_vars", header.NumVars,
		"zone_markers", ds.DumpJSON(header.ZoneMarkers),
	)

	decodedBytes, err := plt.DecodePLT(bs, cmd.Debug)
	if err != nil {
		return errors.Wrap(err, "RunDecode error")
	}
	if cmd.To == "" {
		_, err := os.Stdout.Write(append(decodedBytes, '\n'))
		return err
	}
	if err := os.WriteFile(cmd.To, decodedBytes, 0644); err != nil {
		return errors.Wrapf(err, `RunDecode error writing to "%s"`, cmd.To)
	}
	logger.Info("wrote header", "path", cmd.To)
	return nil
}

func RunView(cmd ViewCmd, logger *slog.Logger) error {
	bs, err := LoadPLT(cmd.From)
	if err != nil {
		return err
	}
	header, err := plt.DecodeHeader(bs)
	if err != nil {
		return errors.Wrap(err, "RunView error")
	}
	logger.Debug("viewing header", "path", cmd.From, "header", ds.DumpJSON(header))
	return ui.Start(cmd.From, *header)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	logger := NewLogger(os.Stderr, args.LogLevel)

	err := error(nil)
	switch {
	case args.Decode != nil:
		err = RunDecode(*args.Decode, logger)
	case args.View != nil:
		err = RunView(*args.View, logger)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}
