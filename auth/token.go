package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/megacare-dev/mega-care-api/config"
)

const customTokenExpiry = time.Hour

// CustomClaims are the claims of tokens minted by this service after a
// successful LINE login.
type CustomClaims struct {
	Provider   string `json:"provider,omitempty"`
	LineUserId string `json:"line_user_id,omitempty"`
	jwt.RegisteredClaims
}

type Issuer struct {
	signingKey []byte
	issuer     string
}

func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{
		signingKey: []byte(cfg.TokenSigningKey),
		issuer:     cfg.TokenIssuer,
	}
}

func (i *Issuer) IssueCustomToken(uid string, lineUserId string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Provider:   "line",
		LineUserId: lineUserId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(customTokenExpiry)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		return "", fmt.Errorf("error signing custom token: %w", err)
	}
	return token, nil
}

type TokenVerifier struct {
	signingKey []byte
	issuer     string
}

func NewTokenVerifier(cfg *config.Config) *TokenVerifier {
	return &TokenVerifier{
		signingKey: []byte(cfg.TokenSigningKey),
		issuer:     cfg.TokenIssuer,
	}
}

func (v *TokenVerifier) Verify(raw string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return nil, ErrUnauthenticated
	}
	if !claims.VerifyIssuer(v.issuer, true) {
		return nil, fmt.Errorf("%w: issuer mismatch", ErrUnauthenticated)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject claim is missing", ErrUnauthenticated)
	}
	return claims, nil
}
