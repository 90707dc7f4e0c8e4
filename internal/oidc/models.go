package oidc

// AuthorizeParams carries optional per-call overrides for
// GenerateAuthorizationURL. Any empty field defaults independently.
type AuthorizeParams struct {
	ResponseType        string
	Nonce               string
	State               string
	CodeChallenge       string
	CodeChallengeMethod string
}

// AuthorizationRequest is the result of GenerateAuthorizationURL. The service
// stores nothing between calls, so the generated verifier is handed back here
// and the caller must persist it until the token exchange. CodeVerifier is
// empty when the caller supplied its own challenge.
type AuthorizationRequest struct {
	URL           string
	State         string
	Nonce         string
	CodeVerifier  string
	CodeChallenge string
}

// TokenResponse is the provider's token endpoint payload, passed through
// without parsing or validation.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserInfo is the provider's userinfo payload, passed through unvalidated.
type UserInfo struct {
	Sub                 string   `json:"sub"`
	Name                string   `json:"name"`
	SocialName          string   `json:"social_name,omitempty"`
	Email               string   `json:"email,omitempty"`
	EmailVerified       bool     `json:"email_verified,omitempty"`
	PhoneNumber         string   `json:"phone_number,omitempty"`
	PhoneNumberVerified bool     `json:"phone_number_verified,omitempty"`
	Picture             string   `json:"picture,omitempty"`
	CNPJ                string   `json:"cnpj,omitempty"`
	AMR                 []string `json:"amr,omitempty"`
}

// ConfiabilidadeNivel is one account trust level as returned by the trust
// endpoint, in provider order.
type ConfiabilidadeNivel struct {
	ID              string `json:"id"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

// ConfiabilidadeSelo is one account trust seal.
type ConfiabilidadeSelo struct {
	ID              string `json:"id"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

type providerErrorPayload struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
