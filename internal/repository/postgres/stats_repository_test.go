package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetTransferStatsByStatus(t *testing.T) {
	t.Run("успешное получение статистики", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("FROM transfer_statuses s").
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow("WAITING_TEAM_APPROVAL", 2).
				AddRow("REJECTED_BY_TEAM", 0).
				AddRow("WAITING_PLAYER_APPROVAL", 1).
				AddRow("REJECTED_BY_PLAYER", 0).
				AddRow("SUCCESS", 4))

		stats, err := repo.GetTransferStatsByStatus(context.Background())

		require.NoError(t, err)
		require.Len(t, stats, 5)
		assert.Equal(t, domain.StatusWaitingTeamApproval, stats[0].Status)
		assert.Equal(t, 4, stats[4].Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("FROM transfer_statuses s").
			WillReturnError(errors.New("database error"))

		_, err := repo.GetTransferStatsByStatus(context.Background())

		assert.EqualError(t, err, "database error")
	})
}

func TestStatsRepository_GetTeamRosterStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("FROM teams tm").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "player_count"}).
			AddRow(11, "Tigers", 3).
			AddRow(10, "Lions", 0))

	stats, err := repo.GetTeamRosterStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Tigers", stats[0].TeamName)
	assert.Equal(t, 3, stats[0].PlayerCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
