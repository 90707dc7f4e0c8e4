// Package govbrconnect is a client SDK for the Brazilian federal identity
// provider (Login Único / acesso.gov.br). It builds the authorization and
// logout redirect URLs, runs the PKCE authorization-code exchange, and calls
// the userinfo and account trust endpoints.
//
// The package re-exports the internal service types so callers only import
// this one path.
package govbrconnect

import (
	oidc "govbr_connect/govbr_oidc_client/internal/oidc"
)

type (
	AuthService          = oidc.AuthService
	Config               = oidc.Config
	Environment          = oidc.Environment
	EndpointSet          = oidc.EndpointSet
	AuthorizeParams      = oidc.AuthorizeParams
	AuthorizationRequest = oidc.AuthorizationRequest
	TokenResponse        = oidc.TokenResponse
	UserInfo             = oidc.UserInfo
	ConfiabilidadeNivel  = oidc.ConfiabilidadeNivel
	ConfiabilidadeSelo   = oidc.ConfiabilidadeSelo
	IDTokenClaims        = oidc.IDTokenClaims
	APIError             = oidc.APIError
)

const (
	EnvironmentProduction = oidc.EnvironmentProduction
	EnvironmentStaging    = oidc.EnvironmentStaging
	APIErrorCode          = oidc.APIErrorCode
)

var (
	ErrMissingClientID      = oidc.ErrMissingClientID
	ErrMissingClientSecret  = oidc.ErrMissingClientSecret
	ErrMissingRedirectURI   = oidc.ErrMissingRedirectURI
	ErrUnknownEnvironment   = oidc.ErrUnknownEnvironment
	ErrPKCEVerifierMismatch = oidc.ErrPKCEVerifierMismatch
)

// New builds an AuthService from the given configuration. ClientID,
// ClientSecret and RedirectURI are required; environment defaults to
// production and the scope list to DefaultScopes.
func New(config Config) (*AuthService, error) {
	return oidc.NewAuthService(config)
}

// DefaultScopes returns the scope list applied when Config.Scopes is empty.
func DefaultScopes() []string {
	return oidc.DefaultScopes()
}

// DecodeIDToken extracts id_token claims without signature verification.
func DecodeIDToken(idToken string) (IDTokenClaims, error) {
	return oidc.DecodeIDToken(idToken)
}

// GenerateCodeVerifier returns a fresh PKCE code verifier.
func GenerateCodeVerifier() (string, error) {
	return oidc.GenerateCodeVerifier()
}

// CodeChallengeS256 derives the S256 challenge for a verifier.
func CodeChallengeS256(codeVerifier string) string {
	return oidc.CodeChallengeS256(codeVerifier)
}

// VerifyCodeChallenge reports whether verifier and challenge belong together.
func VerifyCodeChallenge(codeVerifier, challenge string) error {
	return oidc.VerifyCodeChallenge(codeVerifier, challenge)
}
