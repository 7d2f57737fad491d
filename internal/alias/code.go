package alias

import "math/rand"

// Code lengths for the three kinds of opaque identifiers.
const (
	GameCodeLength   = 8
	TeamCodeLength   = 8
	PlayerCodeLength = 8
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz"

// NewCode returns n lowercase letters drawn independently and uniformly from
// the shared process-wide source. Uniqueness is not guaranteed here; at
// length 8 over 26 letters collisions are a non-issue for this scale, and
// callers that care (the registry) own that risk.
func NewCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
