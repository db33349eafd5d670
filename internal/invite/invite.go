// Package invite generates and normalizes household invite codes.
package invite

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Alphabet is the fixed code alphabet: uppercase letters and digits with
// visually confusable characters (0/O, 1/I) removed.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the number of characters in an invite code.
const CodeLength = 8

// NewCode returns a fresh invite code drawn uniformly at random from the
// alphabet. With 32^8 possible codes, collisions are negligible; the caller
// still retries on a unique-constraint conflict.
func NewCode() (string, error) {
	var sb strings.Builder
	sb.Grow(CodeLength)
	max := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(Alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// Normalize prepares a user-supplied code for lookup: trimmed and upper-cased.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
