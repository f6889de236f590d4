package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint hashes a submission's identifying fields so repeated
// submissions can be correlated in logs without printing them twice.
// The email is case-folded.
func Fingerprint(email, company string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)) + "\x00" + strings.TrimSpace(company))[:16]
}
