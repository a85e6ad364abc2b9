// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"yap/config"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/service"
	"yap/internal/errors"
)

const (
	accessTokenTTL     = time.Minute * 15
	refreshTokenTTL    = time.Hour * 24 * 7
	onboardingTokenTTL = time.Minute * 15
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Each token kind is signed with its own secret, so an onboarding token can
// never be replayed as an access token even with a forged "type" claim.
type jwtService struct {
	secrets map[service.TokenKind]string
	ttls    map[service.TokenKind]time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.Onboarding == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	return &jwtService{
		secrets: map[service.TokenKind]string{
			service.TokenKindAccess:     cfg.SecretKey.Access,
			service.TokenKindRefresh:    cfg.SecretKey.Refresh,
			service.TokenKindOnboarding: cfg.SecretKey.Onboarding,
		},
		ttls: map[service.TokenKind]time.Duration{
			service.TokenKindAccess:     accessTokenTTL,
			service.TokenKindRefresh:    refreshTokenTTL,
			service.TokenKindOnboarding: onboardingTokenTTL,
		},
	}, nil
}

// Generate creates a signed token of the given kind for the user.
func (s *jwtService) Generate(kind service.TokenKind, userID uuid.UUID) (string, error) {
	secret, ok := s.secrets[kind]
	if !ok {
		return "", errors.Errorf("unknown token kind: %s", kind)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),                  // Subject (who the token is for)
		"iat":  now.Unix(),                       // Issued At
		"exp":  now.Add(s.ttls[kind]).Unix(),     // Expiration Time
		"type": string(kind),                     // Type of token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks signature, expiry, kind and subject of a token string.
func (s *jwtService) Validate(kind service.TokenKind, tokenString string) (*service.Claims, error) {
	secret, ok := s.secrets[kind]
	if !ok {
		return nil, errors.Errorf("unknown token kind: %s", kind)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("unexpected claims format")
	}

	if tokenType, _ := claims["type"].(string); tokenType != string(kind) {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("token type mismatch")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("missing expiry")
	}

	return &service.Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: exp,
		},
	}, nil
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.ttls[service.TokenKindRefresh]
}
