package security

import (
	"errors"
	"fmt"
	"time"

	"vidtube/domain/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

type AccessClaims struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// ITokenManager signs and verifies the access/refresh token pair.
type ITokenManager interface {
	SignAccess(user model.User) (string, error)
	SignRefresh(user model.User) (string, error)
	ParseAccess(token string) (*AccessClaims, error)
	ParseRefresh(token string) (*RefreshClaims, error)
}

type JWTManager struct {
	cfg TokenConfig
	now func() time.Time
}

func NewJWTManager(cfg TokenConfig) *JWTManager {
	return &JWTManager{cfg: cfg, now: time.Now}
}

// WithClock overrides the time source used to stamp and verify tokens.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	issuedAt := m.now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
}

func (m *JWTManager) SignAccess(user model.User) (string, error) {
	id := user.ID.Hex()
	claims := AccessClaims{
		ID:               id,
		UserName:         user.UserName,
		FullName:         user.FullName,
		RegisteredClaims: m.registered(id, m.cfg.AccessTTL),
	}
	return sign(claims, m.cfg.AccessSecret)
}

func (m *JWTManager) SignRefresh(user model.User) (string, error) {
	id := user.ID.Hex()
	claims := RefreshClaims{
		ID:               id,
		RegisteredClaims: m.registered(id, m.cfg.RefreshTTL),
	}
	return sign(claims, m.cfg.RefreshSecret)
}

func sign(claims jwt.Claims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is empty")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) ParseAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := m.parse(token, claims, m.cfg.AccessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTManager) ParseRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := m.parse(token, claims, m.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTManager) parse(token string, claims jwt.Claims, secret string) error {
	if token == "" {
		return ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
