package tui

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// EntropySeed returns a course seed from the OS entropy source. It never
// returns 0, which callers treat as "pick a seed".
func EntropySeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano() | 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}
