package oidc

import (
	"strings"
	"testing"
)

func TestEndpointsForStaging(t *testing.T) {
	set, ok := EndpointsFor(EnvironmentStaging)
	if !ok {
		t.Fatalf("staging table missing")
	}
	for _, endpoint := range []string{set.Authorize, set.Token, set.UserInfo, set.Logout, set.TrustBase} {
		if !strings.Contains(endpoint, "staging.acesso.gov.br") {
			t.Fatalf("endpoint not routed to staging: %s", endpoint)
		}
	}
}

func TestEndpointsForUnknown(t *testing.T) {
	if _, ok := EndpointsFor("sandbox"); ok {
		t.Fatalf("unknown environment must not resolve")
	}
}

func TestServiceUsesEnvironmentTable(t *testing.T) {
	config := validConfig()
	config.Environment = EnvironmentStaging
	service, err := NewAuthService(config)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	want, _ := EndpointsFor(EnvironmentStaging)
	if service.Endpoints() != want {
		t.Fatalf("staging service carries wrong endpoints: %+v", service.Endpoints())
	}

	request, err := service.GenerateAuthorizationURL(AuthorizeParams{})
	if err != nil {
		t.Fatalf("generate authorization url: %v", err)
	}
	if !strings.HasPrefix(request.URL, want.Authorize+"?") {
		t.Fatalf("authorize url not staging: %s", request.URL)
	}
	if !strings.HasPrefix(service.GenerateLogoutURL("https://app.test/done"), want.Logout+"?") {
		t.Fatalf("logout url not staging")
	}
}
