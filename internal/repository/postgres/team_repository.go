package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (owner_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query, team.OwnerID, team.Name, time.Now()).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return err
	}
	team.UpdatedAt = nil
	team.Players = []domain.TeamPlayer{}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT id, owner_id, name, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.OwnerID,
		&team.Name,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTeamNotFound
		}
		return nil, err
	}
	team.UpdatedAt = nullTimePtr(updatedAt)

	userRepo := &userRepository{executor: r.executor}
	users, err := userRepo.GetByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	team.Players = make([]domain.TeamPlayer, 0, len(users))
	for _, user := range users {
		team.Players = append(team.Players, userToPlayer(user))
	}

	return team, nil
}

// List возвращает все команды вместе с игроками
func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	teams, err := r.listTeams(ctx, `
		SELECT id, owner_id, name, created_at, updated_at
		FROM teams
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*domain.Team, len(teams))
	for _, team := range teams {
		byID[team.ID] = team
	}

	rows, err := r.executor.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE team_id IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		if team, ok := byID[*user.TeamID]; ok {
			team.Players = append(team.Players, userToPlayer(user))
		}
	}

	return teams, rows.Err()
}

// ListByOwnerID возвращает команды пользователя без списка игроков
func (r *teamRepository) ListByOwnerID(ctx context.Context, ownerID int) ([]*domain.Team, error) {
	return r.listTeams(ctx, `
		SELECT id, owner_id, name, created_at, updated_at
		FROM teams
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
}

func (r *teamRepository) listTeams(ctx context.Context, query string, args ...any) ([]*domain.Team, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{Players: []domain.TeamPlayer{}}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&team.ID,
			&team.OwnerID,
			&team.Name,
			&team.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		team.UpdatedAt = nullTimePtr(updatedAt)
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) UpdateName(ctx context.Context, id int, name string) error {
	query := `
		UPDATE teams
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	return r.execAffectingOne(ctx, query, id, name, time.Now())
}

// Delete удаляет команду; игроки открепляются, трансферы удаляются каскадно
func (r *teamRepository) Delete(ctx context.Context, id int) error {
	return r.execAffectingOne(ctx, "DELETE FROM teams WHERE id = $1", id)
}

func (r *teamRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.executor.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrTeamNotFound
	}

	return nil
}

func userToPlayer(user *domain.User) domain.TeamPlayer {
	return domain.TeamPlayer{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
