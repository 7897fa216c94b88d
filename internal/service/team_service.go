package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, principal *domain.Principal, name string) (*domain.Team, error)
	GetTeam(ctx context.Context, id int) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	UpdateTeam(ctx context.Context, principal *domain.Principal, id int, name string) (*domain.Team, error)
	DeleteTeam(ctx context.Context, principal *domain.Principal, id int) error
	GetTeamTransfers(ctx context.Context, principal *domain.Principal, id int) (*domain.TeamTransfers, error)
}
