package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateResetToken(t *testing.T) {
	t.Parallel()

	tok, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	raw, err := hex.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != ResetTokenLength {
		t.Fatalf("token length: got %d bytes want %d", len(raw), ResetTokenLength)
	}

	other, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}
	if tok == other {
		t.Fatal("two tokens should never collide")
	}
}
