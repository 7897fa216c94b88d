package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type transferRepository struct {
	executor DBExecutor
}

func NewTransferRepository(db *sql.DB) *transferRepository {
	return &transferRepository{executor: db}
}

// Трансфер читается одним запросом вместе с игроком и владельцами обеих команд
const transferSelect = `
	SELECT t.id, t.player_id, t.initial_team_id, t.target_team_id, s.name, t.created_at, t.updated_at,
		p.email, p.first_name, p.last_name,
		it.name, it.owner_id,
		tt.name, tt.owner_id
	FROM transfers t
	JOIN transfer_statuses s ON t.status_id = s.id
	JOIN users p ON t.player_id = p.id
	LEFT JOIN teams it ON t.initial_team_id = it.id
	JOIN teams tt ON t.target_team_id = tt.id
`

const transferOrder = ` ORDER BY t.status_id, t.id`

// Ключ advisory-блокировки для создания трансферов и ответов на них
const transferLockKey = 7_310_001

func scanTransfer(row interface{ Scan(dest ...any) error }) (*domain.Transfer, error) {
	transfer := &domain.Transfer{
		Player:     &domain.TeamPlayer{},
		TargetTeam: &domain.TeamRef{},
	}
	var statusName string
	var initialTeamID sql.NullInt64
	var updatedAt sql.NullTime
	var initialTeamName sql.NullString
	var initialTeamOwnerID sql.NullInt64
	err := row.Scan(
		&transfer.ID,
		&transfer.PlayerID,
		&initialTeamID,
		&transfer.TargetTeamID,
		&statusName,
		&transfer.CreatedAt,
		&updatedAt,
		&transfer.Player.Email,
		&transfer.Player.FirstName,
		&transfer.Player.LastName,
		&initialTeamName,
		&initialTeamOwnerID,
		&transfer.TargetTeam.Name,
		&transfer.TargetTeam.OwnerID,
	)
	if err != nil {
		return nil, err
	}

	transfer.Status = domain.Status(statusName)
	transfer.UpdatedAt = nullTimePtr(updatedAt)
	transfer.InitialTeamID = nullIntPtr(initialTeamID)
	transfer.Player.UserID = transfer.PlayerID
	transfer.TargetTeam.ID = transfer.TargetTeamID
	if transfer.InitialTeamID != nil {
		transfer.InitialTeam = &domain.TeamRef{
			ID:      *transfer.InitialTeamID,
			Name:    initialTeamName.String,
			OwnerID: int(initialTeamOwnerID.Int64),
		}
	}

	return transfer, nil
}

func (r *transferRepository) statusID(ctx context.Context, status domain.Status) (int, error) {
	var statusID int
	err := r.executor.QueryRowContext(ctx, "SELECT id FROM transfer_statuses WHERE name = $1", string(status)).Scan(&statusID)
	if err != nil {
		return 0, err
	}
	return statusID, nil
}

func (r *transferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	statusID, err := r.statusID(ctx, transfer.Status)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transfers (player_id, initial_team_id, target_team_id, status_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = r.executor.QueryRowContext(
		ctx,
		query,
		transfer.PlayerID,
		intPtrArg(transfer.InitialTeamID),
		transfer.TargetTeamID,
		statusID,
		time.Now(),
	).Scan(&transfer.ID, &transfer.CreatedAt)
	if err != nil {
		return err
	}
	transfer.UpdatedAt = nil

	return nil
}

func (r *transferRepository) GetByID(ctx context.Context, id int) (*domain.Transfer, error) {
	return r.getOne(ctx, transferSelect+` WHERE t.id = $1`, id)
}

// GetByIDForUpdate блокирует строку трансфера до конца транзакции,
// поэтому конкурирующие ответы на один трансфер выполняются по очереди
func (r *transferRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Transfer, error) {
	return r.getOne(ctx, transferSelect+` WHERE t.id = $1 FOR UPDATE OF t`, id)
}

func (r *transferRepository) getOne(ctx context.Context, query string, id int) (*domain.Transfer, error) {
	transfer, err := scanTransfer(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTransferNotFound
		}
		return nil, err
	}
	return transfer, nil
}

// ExistsForPlayerAndTeam проверяет наличие трансфера в любом статусе
func (r *transferRepository) ExistsForPlayerAndTeam(ctx context.Context, playerID, targetTeamID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transfers WHERE player_id = $1 AND target_team_id = $2
		)
	`

	var exists bool
	if err := r.executor.QueryRowContext(ctx, query, playerID, targetTeamID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *transferRepository) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	statusID, err := r.statusID(ctx, status)
	if err != nil {
		return err
	}

	query := `
		UPDATE transfers
		SET status_id = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, statusID, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrTransferNotFound
	}

	return nil
}

// RejectPendingExcept переводит все ожидающие трансферы, кроме exceptID, в REJECTED_BY_PLAYER.
// Затрагиваются трансферы всех игроков, а не только игрока exceptID.
func (r *transferRepository) RejectPendingExcept(ctx context.Context, exceptID int) (int64, error) {
	waiting := domain.WaitingStatuses()
	args := []any{exceptID, string(domain.StatusRejectedByPlayer), time.Now()}
	placeholders := make([]string, 0, len(waiting))
	for _, status := range waiting {
		args = append(args, string(status))
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := `
		UPDATE transfers
		SET status_id = (SELECT id FROM transfer_statuses WHERE name = $2), updated_at = $3
		WHERE id <> $1
			AND status_id IN (SELECT id FROM transfer_statuses WHERE name IN (` + strings.Join(placeholders, ", ") + `))
	`

	result, err := r.executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *transferRepository) ListByPlayer(ctx context.Context, playerID int) ([]*domain.Transfer, error) {
	return r.list(ctx, transferSelect+` WHERE t.player_id = $1`+transferOrder, playerID)
}

func (r *transferRepository) ListByInitialTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error) {
	return r.list(ctx, transferSelect+` WHERE t.initial_team_id = $1`+transferOrder, teamID)
}

func (r *transferRepository) ListByTargetTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error) {
	return r.list(ctx, transferSelect+` WHERE t.target_team_id = $1`+transferOrder, teamID)
}

func (r *transferRepository) list(ctx context.Context, query string, arg any) ([]*domain.Transfer, error) {
	rows, err := r.executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]*domain.Transfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transfer)
	}

	return transfers, rows.Err()
}

// AcquireTransferLock берет транзакционную advisory-блокировку.
// Успешный ответ меняет ожидающие трансферы всей системы, поэтому создание трансферов и ответы на них выполняются строго по одному.
func (r *transferRepository) AcquireTransferLock(ctx context.Context) error {
	_, err := r.executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", transferLockKey)
	return err
}
