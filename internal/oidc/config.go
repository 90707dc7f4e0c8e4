package oidc

import (
	"fmt"
	"strings"
)

// Environment selects which of the provider's two deployments every endpoint
// resolves against.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentStaging    Environment = "staging"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Environment  Environment
	Scopes       []string
}

// DefaultScopes returns the scope list used when the caller supplies none.
func DefaultScopes() []string {
	return []string{"openid", "email", "profile", "govbr_confiabilidades"}
}

func (c Config) normalize() Config {
	out := c
	out.ClientID = strings.TrimSpace(out.ClientID)
	out.ClientSecret = strings.TrimSpace(out.ClientSecret)
	out.RedirectURI = strings.TrimSpace(out.RedirectURI)
	if out.Environment == "" {
		out.Environment = EnvironmentProduction
	}
	out.Scopes = normalizeScopes(out.Scopes)
	if len(out.Scopes) == 0 {
		out.Scopes = DefaultScopes()
	}
	return out
}

func (c Config) validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	if c.RedirectURI == "" {
		return ErrMissingRedirectURI
	}
	if _, ok := endpointsByEnvironment[c.Environment]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEnvironment, c.Environment)
	}
	return nil
}
