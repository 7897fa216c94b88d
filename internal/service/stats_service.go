package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type StatsService interface {
	GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error)
	GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error)
}
