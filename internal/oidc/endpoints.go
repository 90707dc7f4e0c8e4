package oidc

// EndpointSet holds the provider URLs an AuthService talks to. It is resolved
// once at construction and never changes for the service's lifetime.
type EndpointSet struct {
	Authorize string
	Token     string
	UserInfo  string
	Logout    string
	TrustBase string
}

var endpointsByEnvironment = map[Environment]EndpointSet{
	EnvironmentProduction: {
		Authorize: "https://sso.acesso.gov.br/authorize",
		Token:     "https://sso.acesso.gov.br/token",
		UserInfo:  "https://sso.acesso.gov.br/userinfo",
		Logout:    "https://sso.acesso.gov.br/logout",
		TrustBase: "https://api.acesso.gov.br/confiabilidades/v3",
	},
	EnvironmentStaging: {
		Authorize: "https://sso.staging.acesso.gov.br/authorize",
		Token:     "https://sso.staging.acesso.gov.br/token",
		UserInfo:  "https://sso.staging.acesso.gov.br/userinfo",
		Logout:    "https://sso.staging.acesso.gov.br/logout",
		TrustBase: "https://api.staging.acesso.gov.br/confiabilidades/v3",
	},
}

// EndpointsFor resolves the fixed endpoint table for an environment tag.
func EndpointsFor(environment Environment) (EndpointSet, bool) {
	set, ok := endpointsByEnvironment[environment]
	return set, ok
}
