package repository

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetActiveByValue(ctx context.Context, value string) (*domain.RefreshToken, error)
	UpdateAccessToken(ctx context.Context, id int, accessToken string) error
	Deactivate(ctx context.Context, value string) error
}
