package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"linkgate/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims *Claims
	err    error
	calls  int
	issuer string
}

func (f *fakeVerifier) Verify(_ context.Context, _, issuer string) (*Claims, error) {
	f.calls++
	f.issuer = issuer
	return f.claims, f.err
}

const testIssuer = "http://kc.local/realms/test"

func TestGateway_Authorize(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AuthConfig
		header     string
		claims     *Claims
		verifyErr  error
		wantStatus int
		want       *Decision
		wantVerify bool
	}{
		{
			name:       "missing header",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic scheme",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "admin secret enabled",
			cfg:    config.AuthConfig{AdminBearerToken: "secret-admin", AdminBearerTokenEnable: true},
			header: "Bearer secret-admin",
			want:   &Decision{IsAdmin: true, Elevated: true},
		},
		{
			name:       "admin secret disabled falls through to verification",
			cfg:        config.AuthConfig{AdminBearerToken: "secret-admin", IssuerURL: testIssuer},
			header:     "Bearer secret-admin",
			verifyErr:  errors.New("malformed"),
			wantStatus: http.StatusUnauthorized,
			wantVerify: true,
		},
		{
			name:       "oidc not configured",
			cfg:        config.AuthConfig{},
			header:     "Bearer x",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid token",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer abc",
			verifyErr:  errors.New("bad signature"),
			wantStatus: http.StatusUnauthorized,
			wantVerify: true,
		},
		{
			name:       "valid token sets email",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer abc",
			claims:     &Claims{Email: "user@example.com"},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:   "preferred username fallback",
			cfg:    config.AuthConfig{IssuerURL: testIssuer},
			header: "Bearer abc",
			claims: &Claims{
				PreferredUsername: "alice",
				RegisteredClaims:  jwt.RegisteredClaims{Subject: "0f8e"},
			},
			want:       &Decision{Identity: "alice"},
			wantVerify: true,
		},
		{
			name:       "subject fallback",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer abc",
			claims:     &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "0f8e"}},
			want:       &Decision{Identity: "0f8e"},
			wantVerify: true,
		},
		{
			name:       "missing identity",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer abc",
			claims:     &Claims{},
			wantStatus: http.StatusForbidden,
			wantVerify: true,
		},
		{
			name:   "wrong audience when enforced",
			cfg:    config.AuthConfig{IssuerURL: testIssuer, Audience: "api", EnforceAudience: true},
			header: "Bearer abc",
			claims: &Claims{
				Email:            "user@example.com",
				RegisteredClaims: jwt.RegisteredClaims{Audience: jwt.ClaimStrings{"wrong"}},
			},
			wantStatus: http.StatusUnauthorized,
			wantVerify: true,
		},
		{
			name:   "audience in list when enforced",
			cfg:    config.AuthConfig{IssuerURL: testIssuer, Audience: "api", EnforceAudience: true},
			header: "Bearer abc",
			claims: &Claims{
				Email:            "user@example.com",
				RegisteredClaims: jwt.RegisteredClaims{Audience: jwt.ClaimStrings{"x", "api"}},
			},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:   "audience ignored when not enforced",
			cfg:    config.AuthConfig{IssuerURL: testIssuer, Audience: "api"},
			header: "Bearer abc",
			claims: &Claims{
				Email:            "user@example.com",
				RegisteredClaims: jwt.RegisteredClaims{Audience: jwt.ClaimStrings{"wrong"}},
			},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:       "required group missing",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "users"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "user@example.com", Groups: []string{"/other"}},
			wantStatus: http.StatusForbidden,
			wantVerify: true,
		},
		{
			name:       "required group present with leading slash",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "users"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "user@example.com", Groups: []string{"/users"}},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:       "admin group sets isAdmin but not elevated",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, AdminGroup: "admins"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "boss@example.com", Groups: []string{"admins"}},
			want:       &Decision{Identity: "boss@example.com", IsAdmin: true},
			wantVerify: true,
		},
		{
			name:       "slash-prefixed user group matches slash-prefixed token group",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "/users"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "user@example.com", Groups: []string{"/users"}},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:       "slash-prefixed user group matches bare token group",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "/users"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "user@example.com", Groups: []string{"users"}},
			want:       &Decision{Identity: "user@example.com"},
			wantVerify: true,
		},
		{
			name:       "slash-prefixed user group still rejects other groups",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "/users"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "user@example.com", Groups: []string{"/other"}},
			wantStatus: http.StatusForbidden,
			wantVerify: true,
		},
		{
			name:       "slash-prefixed admin group matches slash-prefixed token group",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, UserGroup: "/users", AdminGroup: "/admins"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "boss@example.com", Groups: []string{"/admins", "/users"}},
			want:       &Decision{Identity: "boss@example.com", IsAdmin: true},
			wantVerify: true,
		},
		{
			name:       "slash-prefixed admin group matches bare token group",
			cfg:        config.AuthConfig{IssuerURL: testIssuer, AdminGroup: "/admins"},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "boss@example.com", Groups: []string{"admins"}},
			want:       &Decision{Identity: "boss@example.com", IsAdmin: true},
			wantVerify: true,
		},
		{
			name:       "no admin group configured",
			cfg:        config.AuthConfig{IssuerURL: testIssuer},
			header:     "Bearer jwt",
			claims:     &Claims{Email: "boss@example.com", Groups: []string{"admins"}},
			want:       &Decision{Identity: "boss@example.com"},
			wantVerify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{claims: tt.claims, err: tt.verifyErr}
			g := NewGateway(tt.cfg, verifier)

			decision, err := g.Authorize(context.Background(), tt.header)

			if tt.wantVerify {
				assert.Equal(t, 1, verifier.calls)
				assert.Equal(t, testIssuer, verifier.issuer)
			} else {
				assert.Zero(t, verifier.calls)
			}

			if tt.want == nil {
				var authErr *Error
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantStatus, authErr.Status)
				assert.Nil(t, decision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("expired")
	err := reject(http.StatusUnauthorized, "Invalid token", cause)

	assert.Equal(t, "Invalid token: expired", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Missing Bearer token", reject(http.StatusUnauthorized, "Missing Bearer token", nil).Error())
}

func configFor(issuer string) config.AuthConfig {
	return config.AuthConfig{IssuerURL: issuer, AdminGroup: "admins"}
}
