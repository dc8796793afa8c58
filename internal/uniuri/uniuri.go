package uniuri

import (
	"crypto/rand"
)

// StdLen is the length of identifiers returned by New, about 95 bits of entropy.
const StdLen = 16

// StdChars is the alphabet identifiers are drawn from.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a random identifier of StdLen characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a random identifier of length characters from StdChars.
// Bytes above the largest multiple of the alphabet size are rejected to
// avoid modulo bias.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	var (
		clen  = len(StdChars)
		limit = 256 - (256 % clen)
		out   = make([]byte, 0, length)
		buf   = make([]byte, length+length/4+1)
	)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, StdChars[int(b)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
