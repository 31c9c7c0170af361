package qr

import (
	"strings"

	"github.com/bokysan/base45"
	"github.com/bokysan/base45/internal/logging"
	"github.com/bokysan/base45/internal/streams"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"low":     qrcode.Low,
	"medium":  qrcode.Medium,
	"high":    qrcode.High,
	"highest": qrcode.Highest,
}

// Command encodes its input with Base45 and renders the result as a QR code. Base45 only uses
// characters of the QR alphanumeric set, so the code is generated in alphanumeric mode.
type Command struct {
	streams.InputOutput `yaml:",inline"`

	// Options carry no default tag: go-flags would write it over values applied from the configuration file.
	Size     int    `short:"s" long:"size"     yaml:"size"     description:"Width and height of the PNG image in pixels (default: 256)"`
	Recovery string `short:"r" long:"recovery" yaml:"recovery" description:"Error recovery level of the QR code (default: medium)" choice:"low" choice:"medium" choice:"high" choice:"highest"`
	ASCII    bool   `short:"a" long:"ascii"    yaml:"ascii"    description:"Render the QR code as text instead of PNG. Implied when writing to a terminal."`
}

const (
	DefaultSize     = 256
	DefaultRecovery = "medium"
)

func NewCommand() *Command {
	return &Command{
		Size:     DefaultSize,
		Recovery: DefaultRecovery,
	}
}

// Validate checks the options and reports every problem at once.
func (c *Command) Validate(ascii bool) error {
	var errs error
	if _, ok := recoveryLevels[strings.ToLower(c.Recovery)]; !ok {
		errs = multierror.Append(errs, errors.Errorf("Unknown recovery level '%s'", c.Recovery))
	}
	if !ascii && c.Size <= 0 {
		errs = multierror.Append(errs, errors.Errorf("Invalid image size %d, must be positive", c.Size))
	}
	return errs
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	ascii := c.ASCII || c.OutputIsTerminal()
	if err := c.Validate(ascii); err != nil {
		return errors.WithStack(err)
	}

	data, err := c.ReadInput(args)
	if err != nil {
		return err
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Payload:\n%s", spew.Sdump(data))
	}

	encoded := base45.Encode(data)
	code, err := qrcode.New(encoded, recoveryLevels[strings.ToLower(c.Recovery)])
	if err != nil {
		return errors.Wrapf(err, "Could not create a QR code for %d characters", len(encoded))
	}
	log.Debugf("Created a version %d QR code for %d characters", code.VersionNumber, len(encoded))

	if ascii {
		return c.WriteOutput([]byte(renderText(code.Bitmap())))
	}

	png, err := code.PNG(c.Size)
	if err != nil {
		return errors.Wrapf(err, "Could not render a %dx%d PNG", c.Size, c.Size)
	}
	return c.WriteOutput(png)
}

// renderText draws the bitmap with Unicode half blocks, two module rows per line of text.
func renderText(bitmap [][]bool) string {
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				sb.WriteString("█")
			case top:
				sb.WriteString("▀")
			case bottom:
				sb.WriteString("▄")
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
