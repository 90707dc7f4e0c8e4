package oidc

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestDecodeIDToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":            "04487295008",
		"name":           "Maria da Silva",
		"social_name":    "Maria",
		"email":          "maria@example.com",
		"email_verified": true,
		"cnpj":           "83043745000165",
		"nonce":          "n1",
		"amr":            []string{"passwd"},
		"iat":            1700000000,
		"exp":            1700003600,
	})
	signed, err := token.SignedString([]byte("local-test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := DecodeIDToken(signed)
	if err != nil {
		t.Fatalf("decode id token: %v", err)
	}
	if claims.Subject != "04487295008" || claims.Name != "Maria da Silva" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.EmailVerified || claims.CNPJ != "83043745000165" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Nonce != "n1" {
		t.Fatalf("unexpected nonce: %s", claims.Nonce)
	}
	if len(claims.AMR) != 1 || claims.AMR[0] != "passwd" {
		t.Fatalf("amr lost: %+v", claims.AMR)
	}
	if claims.IssuedAt != 1700000000 || claims.ExpiresAt != 1700003600 {
		t.Fatalf("timestamps lost: %+v", claims)
	}
}

func TestDecodeIDTokenRejectsGarbage(t *testing.T) {
	if _, err := DecodeIDToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
