package decode

import (
	"strings"
	"unicode/utf8"

	"github.com/bokysan/base45"
	"github.com/bokysan/base45/internal/logging"
	"github.com/bokysan/base45/internal/streams"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command writes the payload of Base45 encoded input.
type Command struct {
	streams.InputOutput `yaml:",inline"`

	Text  bool `short:"t" long:"text"  yaml:"text"  description:"Fail unless the decoded payload is valid UTF-8 text"`
	Force bool `          long:"force" yaml:"force" description:"Write binary output even if the output is a terminal"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := c.ReadInput(args)
	if err != nil {
		return err
	}

	// Space belongs to the alphabet, so only line terminators are stripped.
	encoded := strings.TrimRight(string(data), "\r\n")

	decoded, err := base45.Decode(encoded)
	if err != nil {
		return errors.Wrapf(err, "Could not decode %d characters of input", len(encoded))
	}
	if c.Text && !utf8.Valid(decoded) {
		return errors.WithStack(base45.ErrInvalidUtf8)
	}
	log.Debugf("Decoded %d characters into %d bytes", len(encoded), len(decoded))

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Payload:\n%s", spew.Sdump(decoded))
	}

	if !c.Force && !utf8.Valid(decoded) && c.OutputIsTerminal() {
		return errors.Errorf("Refusing to write %d bytes of binary data to a terminal. Use --output or --force.", len(decoded))
	}

	return c.WriteOutput(decoded)
}
