package encode

import (
	"github.com/bokysan/base45"
	"github.com/bokysan/base45/internal/logging"
	"github.com/bokysan/base45/internal/streams"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// Command writes the Base45 encoding of its input.
type Command struct {
	streams.InputOutput `yaml:",inline"`

	NoNewline bool `short:"n" long:"no-newline" yaml:"no-newline" description:"Do not append a newline to the encoded text"`
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

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Payload:\n%s", spew.Sdump(data))
	}

	encoded := base45.Encode(data)
	log.Debugf("Encoded %d bytes into %d characters", len(data), len(encoded))

	if !c.NoNewline {
		encoded += "\n"
	}
	return c.WriteOutput([]byte(encoded))
}
