package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка токенов доступа и обновления
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"id"`
	Email  string `json:"email"`
}

type TokenConfig struct {
	Issuer        string
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

type TokenManager struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenManager создает менеджер JWT-токенов (HS256)
func NewTokenManager(config TokenConfig) *TokenManager {
	return &TokenManager{config: config, now: time.Now}
}

// GenerateAccessToken выпускает короткоживущий токен доступа
func (m *TokenManager) GenerateAccessToken(user *domain.User) (string, error) {
	return m.sign(user, m.config.AccessSecret, m.config.AccessTTL)
}

// GenerateRefreshToken выпускает токен обновления, подписанный отдельным секретом
func (m *TokenManager) GenerateRefreshToken(user *domain.User) (string, error) {
	return m.sign(user, m.config.RefreshSecret, m.config.RefreshTTL)
}

func (m *TokenManager) ParseAccessToken(token string) (*Claims, error) {
	return m.parse(token, m.config.AccessSecret)
}

func (m *TokenManager) ParseRefreshToken(token string) (*Claims, error) {
	return m.parse(token, m.config.RefreshSecret)
}

func (m *TokenManager) sign(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID: user.ID,
		Email:  user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) parse(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
