package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

// GetTransferStatsByStatus возвращает количество трансферов по каждому статусу, включая нулевые
func (s *statsService) GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error) {
	stats, err := s.statsRepo.GetTransferStatsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Status]int, len(stats))
	for _, stat := range stats {
		counts[stat.Status] = stat.Count
	}

	result := make([]*domain.StatusStat, 0, len(domain.Statuses()))
	for _, status := range domain.Statuses() {
		result = append(result, &domain.StatusStat{Status: status, Count: counts[status]})
	}

	return result, nil
}

func (s *statsService) GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error) {
	return s.statsRepo.GetTeamRosterStats(ctx)
}
