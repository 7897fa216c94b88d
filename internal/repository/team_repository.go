package repository

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListByOwnerID(ctx context.Context, ownerID int) ([]*domain.Team, error)
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
}
