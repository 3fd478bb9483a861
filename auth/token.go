package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Utkarsh123xd/Student-Sphere/config"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token. The username identifies the
// active user for the request.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Validator struct {
	secret []byte
	ttl    time.Duration
	logger logger.Logger
}

func New(logger logger.Logger, cfg *config.Config) (*Validator, error) {
	secret := cfg.GetJWTSecret()
	if len(secret) == 0 {
		return nil, fmt.Errorf("JWT secret is not configured")
	}

	return &Validator{
		secret: []byte(secret),
		ttl:    cfg.GetTokenTTL(),
		logger: logger,
	}, nil
}

// Issue signs a token for the given user. Token issuance is otherwise
// an external concern; this exists for tests and tooling.
func (v *Validator) Issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// Validate parses and verifies a token and returns its claims. Any
// parse or verification failure maps to ErrInvalidToken; the cause is
// logged, never returned to callers.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		if err != nil {
			v.logger.Warn("token validation failed", "err", err.Error())
		}
		return nil, ErrInvalidToken
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
