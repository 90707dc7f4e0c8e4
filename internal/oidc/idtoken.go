package oidc

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims mirrors the claim set the provider places in its id_token.
type IDTokenClaims struct {
	Subject             string
	Name                string
	SocialName          string
	Email               string
	EmailVerified       bool
	PhoneNumber         string
	PhoneNumberVerified bool
	Picture             string
	CNPJ                string
	Nonce               string
	AMR                 []string
	IssuedAt            int64
	ExpiresAt           int64
}

// DecodeIDToken extracts the claim set of an id_token without verifying its
// signature. Callers needing signature validation must check the token
// against the provider's JWKS themselves.
func DecodeIDToken(idToken string) (IDTokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return IDTokenClaims{}, fmt.Errorf("parse id_token: %w", err)
	}
	return IDTokenClaims{
		Subject:             strClaim(claims, "sub"),
		Name:                strClaim(claims, "name"),
		SocialName:          strClaim(claims, "social_name"),
		Email:               strClaim(claims, "email"),
		EmailVerified:       boolClaim(claims, "email_verified"),
		PhoneNumber:         strClaim(claims, "phone_number"),
		PhoneNumberVerified: boolClaim(claims, "phone_number_verified"),
		Picture:             strClaim(claims, "picture"),
		CNPJ:                strClaim(claims, "cnpj"),
		Nonce:               strClaim(claims, "nonce"),
		AMR:                 strSliceClaim(claims, "amr"),
		IssuedAt:            int64Claim(claims, "iat"),
		ExpiresAt:           int64Claim(claims, "exp"),
	}, nil
}

func strClaim(m jwt.MapClaims, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolClaim(m jwt.MapClaims, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func int64Claim(m jwt.MapClaims, key string) int64 {
	f, _ := m[key].(float64)
	return int64(f)
}

func strSliceClaim(m jwt.MapClaims, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
