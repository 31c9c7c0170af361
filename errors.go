package base45

import "github.com/pkg/errors"

var (
	// ErrInvalidEncoding is returned when the input is not a well-formed Base45 string: it holds a
	// character outside of Alphabet, has a length of 3n+1, or a group decodes to a value that does
	// not fit its output width.
	ErrInvalidEncoding = errors.New("invalid base45 encoding")

	// ErrInvalidUtf8 is returned by DecodeToString when the decoded bytes are not valid UTF-8.
	ErrInvalidUtf8 = errors.New("decoded data is not valid UTF-8")
)
