package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser fills the options of a flags.Parser from YAML documents instead of an INI file.
// Every top-level key of a document names a command and its value is applied onto the
// options of that command, e.g.
//
//	qr:
//	  size: 512
//	  recovery: high
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile reads the YAML documents from the named file. Files referenced from within the
// configuration are resolved relative to the directory of the file.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	if err := y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true)); err != nil {
		return errors.Wrapf(err, "Could not apply configuration file %s", filename)
	}
	log.Debugf("Applied configuration from %s", filename)
	return nil
}

// ParseReader reads the YAML documents from the given reader.
func (y *YamlParser) ParseReader(config io.Reader) error {
	return y.parse(config)
}

// parse decodes the documents one after another. Multiple documents within one stream are
// separated by triple dashes (`---`); later documents override earlier ones.
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseDocument matches every key of the document to a command of the parser and unmarshals
// the value onto the data structure of that command.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		// go-flags keeps the option struct of a group in an unexported field, so it has to be
		// reached through reflection.
		group := reflect.Indirect(reflect.ValueOf(command.Group))
		dataField := group.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		target := dataField.Elem()

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target.Interface()); err != nil {
			return errors.Wrapf(err, "Could not apply options of command '%s'", name)
		}
	}
	return nil
}
