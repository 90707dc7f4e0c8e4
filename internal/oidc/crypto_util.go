package oidc

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

func randomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func randomURLSafe(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// urlSafeBase64 is standard base64 with + and / swapped for - and _ and the
// padding stripped.
func urlSafeBase64(raw []byte) string {
	encoded := base64.StdEncoding.EncodeToString(raw)
	encoded = strings.NewReplacer("+", "-", "/", "_").Replace(encoded)
	return strings.TrimRight(encoded, "=")
}

// GenerateNonce returns 16 random bytes hex-encoded.
func GenerateNonce() (string, error) {
	return randomHex(16)
}

// GenerateState returns 16 random bytes hex-encoded.
func GenerateState() (string, error) {
	return randomHex(16)
}

// EncodeBasicAuth builds the credential part of the token endpoint's
// Authorization header. The provider integration has always sent the
// credentials through the URL-safe base64 transform instead of standard
// Basic base64; kept as-is for compatibility with deployed registrations.
func EncodeBasicAuth(clientID, clientSecret string) string {
	return urlSafeBase64([]byte(clientID + ":" + clientSecret))
}

func normalizeScopes(input []string) []string {
	if len(input) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, value := range input {
		t := strings.TrimSpace(value)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

func constantTimeEquals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
