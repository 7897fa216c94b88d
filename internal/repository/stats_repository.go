package repository

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type StatsRepository interface {
	GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error)
	GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error)
}
