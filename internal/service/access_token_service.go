package service

import (
	"fmt"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the JWT payload. Subject carries the EIN in decimal.
type accessClaims struct {
	Account string `json:"acct"`
	jwt.RegisteredClaims
}

// JWTAccessTokenService implements ports.AccessTokenService using HS256 JWT.
type JWTAccessTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTAccessTokenService creates a new JWT access token service.
func NewJWTAccessTokenService(secret string, expiry time.Duration, issuer string) *JWTAccessTokenService {
	return &JWTAccessTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT for the given identity.
func (s *JWTAccessTokenService) Generate(ein domain.EIN, account domain.Address) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := accessClaims{
		Account: account.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ein.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT, returning the caller identity.
func (s *JWTAccessTokenService) Validate(tokenString string) (*ports.AccessClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	ein, err := domain.ParseEIN(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	var account domain.Address
	if claims.Account != "" {
		account, err = domain.ParseAddress(claims.Account)
		if err != nil {
			return nil, fmt.Errorf("invalid account in token: %w", err)
		}
	}

	return &ports.AccessClaims{
		EIN:     ein,
		Account: account,
	}, nil
}
