package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrVerifierNotConfigured is returned when no signing secret is set.
	ErrVerifierNotConfigured = errors.New("token verifier is not configured")
)

// TokenVerifier resolves a bearer token to the caller's identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*dto.Claims, error)
}

// IdentityConfig holds the settings for verifying externally issued tokens.
type IdentityConfig struct {
	Secret   string
	Audience string
	Issuer   string
}

type identityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens issued by the identity provider.
// It never issues tokens.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier for cfg.
func NewJWTVerifier(cfg IdentityConfig) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &JWTVerifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
	}
}

// Verify checks signature, expiry and, when configured, audience and issuer.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*dto.Claims, error) {
	if len(v.secret) == 0 {
		return nil, ErrVerifierNotConfigured
	}

	claims := &identityClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{UserID: claims.Subject, Email: claims.Email}, nil
}
