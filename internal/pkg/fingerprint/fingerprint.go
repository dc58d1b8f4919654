package fingerprint

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Reference returns a short, stable fingerprint of a payment transaction
// reference so it can appear in logs and outbox payloads without the raw value.
func Reference(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(ref))
	return hex.EncodeToString(sum[:8])
}
