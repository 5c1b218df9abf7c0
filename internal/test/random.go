package test

import (
	"fmt"
	"math/rand/v2"
)

const (
	slugLetters  = "abcdefghijklmnopqrstuvwxyz"
	asciiLetters = slugLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RandomASCIIString returns an alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomProductID returns a catalog style identifier such as "kbd-qwert-042".
func RandomProductID() string {
	return fmt.Sprintf("%s-%s-%03d", randomFrom(slugLetters, 3, 3), randomFrom(slugLetters, 4, 8), rand.IntN(1000))
}

// RandomPhone returns a ten digit local phone number.
func RandomPhone() string {
	return fmt.Sprintf("0%d%08d", 2+rand.IntN(4), rand.IntN(100_000_000))
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
