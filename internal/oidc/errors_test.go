package oidc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAPIErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	withStatus := newAPIError("bad credentials", 401, nil)
	if !strings.Contains(withStatus.Error(), "API_ERROR") || !strings.Contains(withStatus.Error(), "401") {
		t.Fatalf("unexpected message: %s", withStatus.Error())
	}
	withoutStatus := newAPIError("request failed", 0, cause)
	if strings.Contains(withoutStatus.Error(), "status") {
		t.Fatalf("zero status should not be rendered: %s", withoutStatus.Error())
	}
	if !errors.Is(withoutStatus, cause) {
		t.Fatalf("cause should be reachable through Unwrap")
	}
}

func TestRequestConstructionErrorPassesThroughUnwrapped(t *testing.T) {
	service := newTestService(t, func(e *EndpointSet) { e.UserInfo = "://not-a-url" })
	_, err := service.GetUserInfo(context.Background(), "at-1")
	if err == nil {
		t.Fatalf("expected error for unparsable endpoint")
	}
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		t.Fatalf("construction failure must not be normalized: %v", err)
	}
}
