package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

// GetTransferStatsByStatus возвращает число трансферов по каждому статусу, включая нулевые
func (r *statsRepository) GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error) {
	query := `
		SELECT s.name as status, COUNT(t.id) as count
		FROM transfer_statuses s
		LEFT JOIN transfers t ON s.id = t.status_id
		GROUP BY s.id, s.name
		ORDER BY s.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.StatusStat
	for rows.Next() {
		stat := &domain.StatusStat{}
		var statusName string
		if err := rows.Scan(&statusName, &stat.Count); err != nil {
			return nil, err
		}
		stat.Status = domain.Status(statusName)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error) {
	query := `
		SELECT tm.id, tm.name, COUNT(u.id) as player_count
		FROM teams tm
		LEFT JOIN users u ON u.team_id = tm.id
		GROUP BY tm.id, tm.name
		ORDER BY player_count DESC, tm.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.TeamRosterStat
	for rows.Next() {
		stat := &domain.TeamRosterStat{}
		if err := rows.Scan(&stat.TeamID, &stat.TeamName, &stat.PlayerCount); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
