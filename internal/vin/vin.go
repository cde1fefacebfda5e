// Package vin derives vehicle identification numbers from database
// sequence values. Derivation is pure: no state, no I/O, and the same
// sequence value always maps to the same VIN.
package vin

import (
	"crypto/sha256"
	"strconv"
)

// Length is the fixed size of every generated VIN.
const Length = 17

// alphabet holds the permitted VIN symbols: digits and uppercase letters
// with I, O and Q excluded, so codes survive hand transcription.
const alphabet = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"

// Generate derives the VIN for a sequence value.
//
// The decimal representation of seq is hashed with SHA-256 and each of the
// first Length digest bytes is folded onto the alphabet in order. Collisions
// between distinct sequence values are possible in principle; the vehicles
// table's unique key is the arbiter, not this function.
func Generate(seq int64) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(seq, 10)))

	buf := make([]byte, Length)
	for i := 0; i < Length; i++ {
		buf[i] = alphabet[int(sum[i])%len(alphabet)]
	}
	return string(buf)
}
