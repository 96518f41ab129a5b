package enigma

import (
	"encoding/base64"
	"strings"

	"github.com/PolarWolf314/enigma/internal/disks"
)

// Encode resets the engine, base64 encodes value and translates the result.
func (e *Engine) Encode(value string) (string, error) {
	if err := e.Reset(); err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(value))

	return e.Translate(encoded), nil
}

// Decode resets the engine, translates value and base64 decodes the result.
// Cipher text produced under a different configuration decodes to garbage;
// it is never reported as an error.
func (e *Engine) Decode(value string) (string, error) {
	if err := e.Reset(); err != nil {
		return "", err
	}
	decoded := e.Translate(value)

	return decodeBase64(decoded), nil
}

// decodeBase64 decodes as much of value as it can. Characters outside the
// base64 alphabet are dropped, decoding stops at the first padding character
// and a dangling final character is ignored.
func decodeBase64(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r == '=' {
			break
		}
		if disks.IsAlphanumeric(r) || r == '+' || r == '/' {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}

	out, err := base64.RawStdEncoding.DecodeString(clean)
	if err != nil {
		return ""
	}
	return string(out)
}
