// Package token mints the opaque identifier strings consumed by the dungeon
// decoder. A token is the fixed prefix followed by random base62 characters
// (digits, lowercase, uppercase).
//
// Minting takes an explicit *rand.Rand so callers control reproducibility:
// the same seed always yields the same token, and per-call generators keep
// concurrent minting safe.
package token

import (
	"math/rand"
	"strings"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// BodyLength is the default number of random characters after the prefix,
// giving the canonical 62-character token.
const BodyLength = 58

// alphabet is the base62 character set in numeric order.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Mint returns a new token with the default body length.
func Mint(rng *rand.Rand) string {
	return MintN(rng, BodyLength)
}

// MintN returns a new token with n random characters after the prefix.
// n below 1 is raised to 1 so the result always carries a room count
// character.
func MintN(rng *rand.Rand, n int) string {
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	b.Grow(len(dungeon.Prefix) + n)
	b.WriteString(dungeon.Prefix)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

// Valid reports whether s is structurally decodable. It is a convenience
// wrapper around the decoder for callers that only need a yes/no answer.
func Valid(s string) bool {
	_, err := dungeon.Decode(s)
	return err == nil
}
