package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// ResetTokenLength is the raw byte length of a password reset token.
const ResetTokenLength = 20

// GenerateResetToken returns a cryptographically random hex token for
// password resets.
func GenerateResetToken() (string, error) {
	b := make([]byte, ResetTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
