package geohash

import "fmt"

// Alphabet is the fixed geohash base-32 character set. The letters a, i,
// l, and o are omitted to avoid visual ambiguity; character order defines
// the 5-bit digit values.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// decodeMap maps each alphabet character back to its 5-bit digit. Built
// once; read-only afterwards.
var decodeMap = func() map[byte]int {
	m := make(map[byte]int, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = i
	}
	return m
}()

// charToDigit returns the 5-bit value of a lower-case alphabet character.
func charToDigit(c byte) (int, error) {
	d, ok := decodeMap[c]
	if !ok {
		return 0, fmt.Errorf("%q: %w", c, ErrInvalidCharacter)
	}
	return d, nil
}
