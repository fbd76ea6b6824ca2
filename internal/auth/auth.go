// Package auth classifies API requests into anonymous, user, group admin or
// bearer super-admin callers.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"linkgate/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "Bearer "

// Decision is the outcome of a successful authorization.
// Elevated is only set by the bearer secret; IsAdmin also covers group admins.
type Decision struct {
	Identity string
	IsAdmin  bool
	Elevated bool
}

// Error is a rejected authorization carrying the HTTP status to answer with
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func reject(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// Claims are the token claims read by the gateway
type Claims struct {
	Email             string   `json:"email,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Groups            []string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the first non-empty of email, preferred_username and sub
func (c *Claims) Identity() string {
	switch {
	case c.Email != "":
		return c.Email
	case c.PreferredUsername != "":
		return c.PreferredUsername
	default:
		return c.Subject
	}
}

// Verifier checks a token signature against the issuer's key set and
// validates its issuer claim
type Verifier interface {
	Verify(ctx context.Context, token, issuer string) (*Claims, error)
}

// Gateway authorizes API requests from their Authorization header
type Gateway struct {
	cfg      config.AuthConfig
	verifier Verifier
}

// NewGateway creates a new Gateway. Configured group names are normalized
// like token groups, so "/admins" and "admins" are equivalent.
func NewGateway(cfg config.AuthConfig, verifier Verifier) *Gateway {
	cfg.UserGroup = normalizeGroup(cfg.UserGroup)
	cfg.AdminGroup = normalizeGroup(cfg.AdminGroup)
	return &Gateway{
		cfg:      cfg,
		verifier: verifier,
	}
}

// Authorize evaluates header and returns the caller's decision. Rejections
// are returned as *Error.
func (g *Gateway) Authorize(ctx context.Context, header string) (*Decision, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, reject(http.StatusUnauthorized, "Missing Bearer token", nil)
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return nil, reject(http.StatusUnauthorized, "Missing Bearer token", nil)
	}

	if g.isAdminSecret(token) {
		return &Decision{IsAdmin: true, Elevated: true}, nil
	}

	if g.cfg.IssuerURL == "" {
		return nil, reject(http.StatusInternalServerError, "OIDC not configured", nil)
	}

	claims, err := g.verifier.Verify(ctx, token, g.cfg.IssuerURL)
	if err != nil {
		log.Debug().Err(err).Msg("Token verification failed")
		return nil, reject(http.StatusUnauthorized, "Invalid token", err)
	}

	if g.cfg.EnforceAudience && g.cfg.Audience != "" && !hasAudience(claims, g.cfg.Audience) {
		return nil, reject(http.StatusUnauthorized, "Invalid audience", nil)
	}

	identity := claims.Identity()
	if identity == "" {
		return nil, reject(http.StatusForbidden, "Email claim required", nil)
	}

	groups := normalizeGroups(claims.Groups)
	if g.cfg.UserGroup != "" && !groups[g.cfg.UserGroup] {
		return nil, reject(http.StatusForbidden, "Forbidden: missing required group", nil)
	}

	return &Decision{
		Identity: identity,
		IsAdmin:  g.cfg.AdminGroup != "" && groups[g.cfg.AdminGroup],
	}, nil
}

func (g *Gateway) isAdminSecret(token string) bool {
	if !g.cfg.AdminBearerTokenEnable || g.cfg.AdminBearerToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(g.cfg.AdminBearerToken)) == 1
}

func hasAudience(claims *Claims, audience string) bool {
	for _, aud := range claims.Audience {
		if aud == audience {
			return true
		}
	}
	return false
}

// normalizeGroups strips one leading "/" from each group name
func normalizeGroups(groups []string) map[string]bool {
	set := make(map[string]bool, len(groups))
	for _, group := range groups {
		set[normalizeGroup(group)] = true
	}
	return set
}

func normalizeGroup(group string) string {
	return strings.TrimPrefix(strings.TrimSpace(group), "/")
}
