package oidc

import (
	"crypto/sha256"
	"encoding/base64"
)

// GenerateCodeVerifier returns 32 random bytes as an unpadded URL-safe base64
// string, suitable as a PKCE code verifier.
func GenerateCodeVerifier() (string, error) {
	return randomURLSafe(32)
}

// CodeChallengeS256 derives the S256 code challenge for a verifier. The same
// verifier always yields the same challenge.
func CodeChallengeS256(codeVerifier string) string {
	sum := sha256.Sum256([]byte(codeVerifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// VerifyCodeChallenge reports whether the verifier matches a previously issued
// S256 challenge.
func VerifyCodeChallenge(codeVerifier, challenge string) error {
	if codeVerifier == "" || challenge == "" {
		return ErrPKCEVerifierMismatch
	}
	if !constantTimeEquals(CodeChallengeS256(codeVerifier), challenge) {
		return ErrPKCEVerifierMismatch
	}
	return nil
}
