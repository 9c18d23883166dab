package genfiles

import (
	"math/rand"
	"time"
)

// textAlphabet is the fixed symbol set for text payloads: ASCII letters,
// digits, space, newline, and tab. Every symbol is a single byte, so the
// encoded length of a text payload always equals the requested size.
const textAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 \n\t"

// Source produces the random payloads and draws used by the generators.
// Each Source owns its own rand.Rand, so a run can be reproduced by
// seeding; there is no package-global randomness.
type Source struct {
	rnd *rand.Rand
}

// NewSource returns a Source seeded with seed. A zero seed selects a
// time-based seed, giving a different stream on every run.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Data returns exactly size random bytes. Binary payloads are uniformly
// random bytes; text payloads draw each byte independently and uniformly
// from textAlphabet. A size of zero yields an empty slice.
func (s *Source) Data(size int, binary bool) []byte {
	buf := make([]byte, size)

	if binary {
		_, _ = s.rnd.Read(buf) // never fails per math/rand docs

		return buf
	}

	for i := range buf {
		buf[i] = textAlphabet[s.rnd.Intn(len(textAlphabet))]
	}

	return buf
}

// intBetween returns a uniform random int in [lo, hi] inclusive.
// lo == hi is allowed and returns that exact value.
func (s *Source) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.rnd.Intn(hi-lo+1)
}

// coin returns an unbiased random boolean.
func (s *Source) coin() bool {
	return s.rnd.Intn(2) == 0
}
