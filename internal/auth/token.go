package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token scopes. A token's scope is fixed at issue time and restricts which
// endpoints accept it: setup and 2fa tokens are short-lived stepping stones,
// only a full token reaches the protected resource layer.
const (
	ScopeSetup     = "setup"
	ScopeTwoFactor = "2fa"
	ScopeFull      = "full"
)

const (
	SetupTokenTTL     = 15 * time.Minute
	TwoFactorTokenTTL = 15 * time.Minute
	FullTokenTTL      = 8 * time.Hour
	CodeTTL           = 5 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Scope    string `json:"scope"`
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (t *TokenService) Issue(username, scope string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: username,
		Scope:    scope,
	})
	return token.SignedString(t.secret)
}

func (t *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
