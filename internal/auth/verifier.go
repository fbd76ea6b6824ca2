package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const certsPath = "/protocol/openid-connect/certs"

var signingMethods = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512", "ES256", "ES384", "ES512"}

// JWKSVerifier verifies tokens against the key set published by each
// issuer. Key sets are fetched on first use and kept for the lifetime of
// the verifier's context.
type JWKSVerifier struct {
	ctx  context.Context
	mu   sync.RWMutex
	sets map[string]keyfunc.Keyfunc
}

// NewJWKSVerifier creates a verifier whose background key refreshes stop
// when ctx is cancelled
func NewJWKSVerifier(ctx context.Context) *JWKSVerifier {
	return &JWKSVerifier{
		ctx:  ctx,
		sets: make(map[string]keyfunc.Keyfunc),
	}
}

// Verify implements Verifier
func (v *JWKSVerifier) Verify(_ context.Context, token, issuer string) (*Claims, error) {
	kf, err := v.keySet(issuer)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, kf.Keyfunc,
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods(signingMethods),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (v *JWKSVerifier) keySet(issuer string) (keyfunc.Keyfunc, error) {
	key := strings.TrimRight(issuer, "/")

	v.mu.RLock()
	kf, ok := v.sets[key]
	v.mu.RUnlock()
	if ok {
		return kf, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if kf, ok := v.sets[key]; ok {
		return kf, nil
	}

	url := key + certsPath
	kf, err := keyfunc.NewDefaultCtx(v.ctx, []string{url})
	if err != nil {
		return nil, fmt.Errorf("failed to load key set from %s: %w", url, err)
	}
	v.sets[key] = kf

	log.Info().Str("issuer", key).Msg("Issuer key set loaded")

	return kf, nil
}
