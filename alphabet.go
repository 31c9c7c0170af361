package base45

import "fmt"

// Alphabet lists the 45 characters of the encoding in index order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

const (
	base        = 45
	baseSquared = base * base

	invalidChar = -1
)

// decodeMap maps every byte to its index in Alphabet, or to invalidChar. It is filled in
// during package initialisation and only read afterwards.
var decodeMap = newDecodeMap(Alphabet)

// newDecodeMap builds the inverse of the given alphabet. It panics if the alphabet does not
// consist of exactly 45 distinct bytes.
func newDecodeMap(alphabet string) [256]int8 {
	if len(alphabet) != base {
		panic(fmt.Sprintf("base45: alphabet must be %d bytes long, got %d", base, len(alphabet)))
	}

	var m [256]int8
	for i := range m {
		m[i] = invalidChar
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if m[c] != invalidChar {
			panic(fmt.Sprintf("base45: duplicate character %q in alphabet", c))
		}
		m[c] = int8(i)
	}
	return m
}
