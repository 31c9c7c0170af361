package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/base45/internal/args"
	"github.com/bokysan/base45/internal/commands/decode"
	"github.com/bokysan/base45/internal/commands/encode"
	"github.com/bokysan/base45/internal/commands/qr"
	"github.com/bokysan/base45/internal/commands/version"
	b45Flags "github.com/bokysan/base45/internal/flags"
	"github.com/bokysan/base45/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base45 is the main executable
type Base45 struct {
	parser *flags.Parser
}

// NewBase45 will create a new instance of Base45 and initialize the parser
func NewBase45() *Base45 {
	executablePath := path.Base(os.Args[0])

	b := &Base45{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}
	b.parser.LongDescription = "Encode and decode data using Base45 (draft-faltstrom-base45)."

	b.setupGeneral()
	b.setupConfiguration()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupQr()

	return b
}

// setupGeneral will configure general options
func (b *Base45) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (b *Base45) setupVersion() {
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base45) setupEncode() {
	_, err := b.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode the input (or the arguments, joined by spaces) to Base45 text",
		encode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base45) setupDecode() {
	_, err := b.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode Base45 text from the input (or the arguments, joined by single spaces). Trailing line breaks are ignored. "+
			"Space is part of the alphabet: quote encoded text containing runs of spaces or read it with --input.",
		decode.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupQr adds the `qr` command
func (b *Base45) setupQr() {
	_, err := b.parser.AddCommand(
		"qr",
		"Render a QR code",
		"Encode the input to Base45 and render it as an alphanumeric QR code",
		qr.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupConfiguration makes the `--config` option apply a YAML file onto the command options
func (b *Base45) setupConfiguration() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return &flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			}
		}

		args.General.ConfigurationFilePath = file
		return b45Flags.NewYamlParser(b.parser).ParseFile(file)
	}
}

// main starts base45 and reads the configuration file
func main() {
	b := NewBase45()
	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
