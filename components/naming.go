package components

import "strconv"

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"
)

// NameCycle is the number of distinct consonant-vowel-consonant names.
const NameCycle = len(consonants) * len(vowels) * len(consonants)

// Name returns the pronounceable id for the n-th registration: Bab, Cab,
// Dab, ... Once every name is used the cycle index is appended (Bab1).
func Name(n int) string {
	c, v := len(consonants), len(vowels)
	first := n % c
	vowel := (n / c) % v
	last := (n / (c * v)) % c

	name := []byte{consonants[first] - 'a' + 'A', vowels[vowel], consonants[last]}
	if cycle := n / NameCycle; cycle > 0 {
		return string(name) + strconv.Itoa(cycle)
	}
	return string(name)
}
