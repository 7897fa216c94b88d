package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type UserService interface {
	// Signup регистрирует нового пользователя
	Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)

	// Signin проверяет учетные данные и выпускает пару токенов
	Signin(ctx context.Context, email, password string) (*domain.Session, error)

	// RefreshToken выпускает новый токен доступа по действующему токену обновления
	RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)

	// Signout деактивирует токен обновления, если он есть
	Signout(ctx context.Context, refreshToken string) error

	// Me возвращает профиль запрашивающего
	Me(ctx context.Context, principal *domain.Principal) (*domain.Profile, error)

	// Authenticate проверяет токен доступа и собирает Principal
	Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error)
}
