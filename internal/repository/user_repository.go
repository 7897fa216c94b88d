package repository

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error)
	SetTeam(ctx context.Context, userID int, teamID *int) error
	CountOwnedTeams(ctx context.Context, userID int) (int, error)
}
