package configs

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short digest of configuration. It identifies a
// configuration without revealing it; it is not a key derivation.
func Fingerprint(configuration string) string {
	sum := blake2b.Sum256([]byte(configuration))
	return hex.EncodeToString(sum[:8])
}
