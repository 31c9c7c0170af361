package streams

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// stdStream is the file name selecting stdin or stdout.
const stdStream = "-"

// InputOutput holds the input and output options shared by the codec commands. Unless replaced
// with SetStreams, stdin and stdout of the process are used.
type InputOutput struct {
	// An empty name selects stdin or stdout. No default tag, see isStdStream.
	Input  string `short:"i" long:"input"  yaml:"input"  description:"Read the input from this file, '-' for stdin (default). Ignored if data is given as arguments."`
	Output string `short:"o" long:"output" yaml:"output" description:"Write the output to this file, '-' for stdout (default)"`

	stdin  io.Reader
	stdout io.Writer
}

func isStdStream(name string) bool {
	return name == "" || name == stdStream
}

// SetStreams replaces stdin and stdout of the process.
func (o *InputOutput) SetStreams(stdin io.Reader, stdout io.Writer) {
	o.stdin = stdin
	o.stdout = stdout
}

func (o *InputOutput) reader() io.Reader {
	if o.stdin == nil {
		return os.Stdin
	}
	return o.stdin
}

func (o *InputOutput) writer() io.Writer {
	if o.stdout == nil {
		return os.Stdout
	}
	return o.stdout
}

// ReadInput returns the arguments joined by single spaces if there are any, the contents of the
// input otherwise.
func (o *InputOutput) ReadInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		log.Debugf("Reading input from %d command line argument(s)", len(args))
		return []byte(strings.Join(args, " ")), nil
	}

	if isStdStream(o.Input) {
		log.Debugf("Reading input from stdin")
		data, err := io.ReadAll(o.reader())
		if err != nil {
			return nil, errors.Wrap(err, "Could not read from stdin")
		}
		return data, nil
	}

	log.Debugf("Reading input from %s", o.Input)
	data, err := os.ReadFile(o.Input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// WriteOutput writes data to the output file or stdout.
func (o *InputOutput) WriteOutput(data []byte) error {
	if isStdStream(o.Output) {
		if _, err := o.writer().Write(data); err != nil {
			return errors.Wrap(err, "Could not write to stdout")
		}
		return nil
	}

	log.Debugf("Writing %d bytes to %s", len(data), o.Output)
	if err := os.WriteFile(o.Output, data, 0644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// OutputIsTerminal reports whether the output goes to an interactive terminal.
func (o *InputOutput) OutputIsTerminal() bool {
	if !isStdStream(o.Output) {
		return false
	}
	f, ok := o.writer().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
