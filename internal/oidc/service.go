package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// AuthService encapsulates all interaction with the provider's network
// surface: authorization and logout URL construction, the PKCE token
// exchange, and the userinfo and trust lookups. It is stateless between
// calls and safe for concurrent use.
type AuthService struct {
	config    Config
	endpoints EndpointSet
	http      *http.Client
}

func NewAuthService(config Config) (*AuthService, error) {
	cfg := config.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	endpoints, _ := EndpointsFor(cfg.Environment)
	return &AuthService{
		config:    cfg,
		endpoints: endpoints,
		http:      &http.Client{Timeout: requestTimeout},
	}, nil
}

// Endpoints returns the resolved endpoint table.
func (s *AuthService) Endpoints() EndpointSet {
	return s.endpoints
}

// GenerateAuthorizationURL builds the authorization redirect URL. Fields not
// present in params are generated: state and nonce as random hex, and a fresh
// PKCE verifier/challenge pair unless the caller brought its own challenge.
// No network call is made.
func (s *AuthService) GenerateAuthorizationURL(params AuthorizeParams) (AuthorizationRequest, error) {
	request := AuthorizationRequest{
		State:         params.State,
		Nonce:         params.Nonce,
		CodeChallenge: params.CodeChallenge,
	}
	var err error
	if request.Nonce == "" {
		if request.Nonce, err = GenerateNonce(); err != nil {
			return AuthorizationRequest{}, fmt.Errorf("generate nonce: %w", err)
		}
	}
	if request.State == "" {
		if request.State, err = GenerateState(); err != nil {
			return AuthorizationRequest{}, fmt.Errorf("generate state: %w", err)
		}
	}
	if request.CodeChallenge == "" {
		if request.CodeVerifier, err = GenerateCodeVerifier(); err != nil {
			return AuthorizationRequest{}, fmt.Errorf("generate code verifier: %w", err)
		}
		request.CodeChallenge = CodeChallengeS256(request.CodeVerifier)
	}
	responseType := params.ResponseType
	if responseType == "" {
		responseType = "code"
	}
	challengeMethod := params.CodeChallengeMethod
	if challengeMethod == "" {
		challengeMethod = "S256"
	}

	q := url.Values{}
	q.Set("response_type", responseType)
	q.Set("client_id", s.config.ClientID)
	q.Set("scope", strings.Join(s.config.Scopes, " "))
	q.Set("redirect_uri", s.config.RedirectURI)
	q.Set("nonce", request.Nonce)
	q.Set("state", request.State)
	q.Set("code_challenge", request.CodeChallenge)
	q.Set("code_challenge_method", challengeMethod)
	request.URL = s.endpoints.Authorize + "?" + q.Encode()
	return request, nil
}

// GetTokens exchanges an authorization code for tokens. codeVerifier must be
// the verifier whose challenge was sent in the authorization request.
func (s *AuthService) GetTokens(ctx context.Context, code, codeVerifier string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.config.RedirectURI)
	form.Set("code_verifier", codeVerifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoints.Token, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+EncodeBasicAuth(s.config.ClientID, s.config.ClientSecret))

	var tokens TokenResponse
	if err = s.doJSON(req, &tokens); err != nil {
		return TokenResponse{}, err
	}
	return tokens, nil
}

// GetUserInfo fetches the profile behind an access token.
func (s *AuthService) GetUserInfo(ctx context.Context, accessToken string) (UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoints.UserInfo, nil)
	if err != nil {
		return UserInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var info UserInfo
	if err = s.doJSON(req, &info); err != nil {
		return UserInfo{}, err
	}
	return info, nil
}

// GetConfiabilidadeNiveis lists the account's trust levels, in provider order.
// cpf goes into the URL path as given; format checks are the caller's problem.
func (s *AuthService) GetConfiabilidadeNiveis(ctx context.Context, accessToken, cpf string) ([]ConfiabilidadeNivel, error) {
	var niveis []ConfiabilidadeNivel
	if err := s.getTrustResource(ctx, accessToken, cpf, "niveis", &niveis); err != nil {
		return nil, err
	}
	return niveis, nil
}

// GetConfiabilidadeSelos lists the account's trust seals, in provider order.
func (s *AuthService) GetConfiabilidadeSelos(ctx context.Context, accessToken, cpf string) ([]ConfiabilidadeSelo, error) {
	var selos []ConfiabilidadeSelo
	if err := s.getTrustResource(ctx, accessToken, cpf, "confiabilidades", &selos); err != nil {
		return nil, err
	}
	return selos, nil
}

func (s *AuthService) getTrustResource(ctx context.Context, accessToken, cpf, resource string, out any) error {
	endpoint := fmt.Sprintf("%s/contas/%s/%s?response-type=ids", s.endpoints.TrustBase, url.PathEscape(cpf), resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return s.doJSON(req, out)
}

// GenerateLogoutURL builds the provider logout redirect URL. Pure string
// construction, no network call.
func (s *AuthService) GenerateLogoutURL(postLogoutRedirectURI string) string {
	return s.endpoints.Logout + "?post_logout_redirect_uri=" + url.QueryEscape(postLogoutRedirectURI)
}

// doJSON executes the request and decodes a 2xx JSON body into out. Every
// transport failure and non-2xx response comes back as an *APIError; errors
// raised before the request leaves (and so everything not recognizable as a
// transport failure) pass through unwrapped.
func (s *AuthService) doJSON(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return newAPIError(fmt.Sprintf("request to %s failed", req.URL.Host), 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAPIError("read provider response", resp.StatusCode, err)
	}
	if resp.StatusCode/100 != 2 {
		message := fmt.Sprintf("provider returned status %d", resp.StatusCode)
		payload := providerErrorPayload{}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			message = strings.TrimSpace(payload.Error + " " + payload.ErrorDescription)
		}
		return newAPIError(message, resp.StatusCode, nil)
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		return newAPIError("decode provider response", resp.StatusCode, err)
	}
	return nil
}
