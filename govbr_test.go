package govbrconnect_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	govbrconnect "govbr_connect/govbr_oidc_client"
)

func TestNewValidatesConfiguration(t *testing.T) {
	_, err := govbrconnect.New(govbrconnect.Config{
		ClientID:    "client-1",
		RedirectURI: "https://app.test/callback",
	})
	if !errors.Is(err, govbrconnect.ErrMissingClientSecret) {
		t.Fatalf("expected missing secret error, got %v", err)
	}
}

func TestAuthorizationRoundTrip(t *testing.T) {
	service, err := govbrconnect.New(govbrconnect.Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURI:  "https://app.test/callback",
		Environment:  govbrconnect.EnvironmentStaging,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	request, err := service.GenerateAuthorizationURL(govbrconnect.AuthorizeParams{})
	if err != nil {
		t.Fatalf("generate authorization url: %v", err)
	}
	if !strings.HasPrefix(request.URL, "https://sso.staging.acesso.gov.br/authorize?") {
		t.Fatalf("staging environment not honored: %s", request.URL)
	}
	parsed, err := url.Parse(request.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	challenge := parsed.Query().Get("code_challenge")
	if err = govbrconnect.VerifyCodeChallenge(request.CodeVerifier, challenge); err != nil {
		t.Fatalf("verifier does not match sent challenge: %v", err)
	}
}
