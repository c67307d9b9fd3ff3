package line

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/megacare-dev/mega-care-api/config"
)

// IDTokenClaims are the claims extracted from a LINE ID token. Subject is
// the stable LINE user id.
type IDTokenClaims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// IDTokenVerifier validates LINE ID tokens locally. LINE Login channels
// sign ID tokens with HS256 using the channel secret.
type IDTokenVerifier struct {
	channelId     string
	channelSecret []byte
}

func NewIDTokenVerifier(cfg *config.Config) *IDTokenVerifier {
	return &IDTokenVerifier{
		channelId:     cfg.LineChannelId,
		channelSecret: []byte(cfg.LineChannelSecret),
	}
}

func (v *IDTokenVerifier) Verify(raw string) (*IDTokenClaims, error) {
	claims := &IDTokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return v.channelSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(v.channelId, true) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}
	if !claims.VerifyIssuer(Issuer, true) {
		return nil, fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject claim is missing", ErrInvalidToken)
	}
	return claims, nil
}
