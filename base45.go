// Package base45 implements Base45, the QR-code friendly binary-to-text encoding described in
// draft-faltstrom-base45.
package base45

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EncodedLen returns the length of the Base45 encoding of n bytes. Every 2 bytes become 3
// characters, a trailing odd byte becomes 2 characters.
func EncodedLen(n int) int {
	return n/2*3 + n%2*2
}

// DecodedLen returns the number of bytes held by a well-formed Base45 string of length n.
func DecodedLen(n int) int {
	return n/3*2 + n%3/2
}

// Encode encodes src. It never fails; an empty input yields an empty string.
func Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	encode(dst, src)
	return string(dst)
}

// EncodeString encodes the UTF-8 bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

func encode(dst, src []byte) {
	di := 0
	for len(src) >= 2 {
		// Digits are written least significant first.
		v := uint(src[0])<<8 | uint(src[1])
		dst[di] = Alphabet[v%base]
		dst[di+1] = Alphabet[v/base%base]
		dst[di+2] = Alphabet[v/baseSquared]
		src = src[2:]
		di += 3
	}
	if len(src) == 1 {
		v := uint(src[0])
		dst[di] = Alphabet[v%base]
		dst[di+1] = Alphabet[v/base]
	}
}

// Decode decodes the Base45 string s. Any error wraps ErrInvalidEncoding and no partial
// result is returned.
func Decode(s string) ([]byte, error) {
	n := len(s)
	if n%3 == 1 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "illegal input length %d", n)
	}

	dst := make([]byte, 0, DecodedLen(n))
	for i := 0; i+3 <= n; i += 3 {
		v, err := groupValue(s, i, 3)
		if err != nil {
			return nil, err
		}
		if v > 0xFFFF {
			return nil, errors.Wrapf(ErrInvalidEncoding, "group at offset %d decodes to %d, which overflows 16 bits", i, v)
		}
		dst = append(dst, byte(v>>8), byte(v))
	}

	if n%3 == 2 {
		i := n - 2
		v, err := groupValue(s, i, 2)
		if err != nil {
			return nil, err
		}
		if v > 0xFF {
			return nil, errors.Wrapf(ErrInvalidEncoding, "trailing group at offset %d decodes to %d, which overflows a byte", i, v)
		}
		dst = append(dst, byte(v))
	}

	return dst, nil
}

// DecodeToString decodes s and returns the result as a string. Besides the errors of Decode,
// it fails with ErrInvalidUtf8 if the decoded bytes are not valid UTF-8.
func DecodeToString(s string) (string, error) {
	data, err := Decode(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.WithStack(ErrInvalidUtf8)
	}
	return string(data), nil
}

// groupValue reads width characters of s starting at offset and combines them into a number,
// least significant digit first.
func groupValue(s string, offset, width int) (uint, error) {
	v, weight := uint(0), uint(1)
	for j := offset; j < offset+width; j++ {
		d := decodeMap[s[j]]
		if d == invalidChar {
			return 0, errors.Wrapf(ErrInvalidEncoding, "illegal character %q at offset %d", s[j], j)
		}
		v += uint(d) * weight
		weight *= base
	}
	return v, nil
}
