package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type refreshTokenRepository struct {
	executor DBExecutor
}

func NewRefreshTokenRepository(db *sql.DB) *refreshTokenRepository {
	return &refreshTokenRepository{executor: db}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (user_id, value, access_token, active, created_at)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query, token.UserID, token.Value, token.AccessToken, time.Now()).
		Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return err
	}
	token.Active = true

	return nil
}

func (r *refreshTokenRepository) GetActiveByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, value, access_token, active, created_at, updated_at
		FROM refresh_tokens
		WHERE value = $1 AND active = TRUE
		ORDER BY id DESC
		LIMIT 1
	`

	token := &domain.RefreshToken{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, value).Scan(
		&token.ID,
		&token.UserID,
		&token.Value,
		&token.AccessToken,
		&token.Active,
		&token.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	token.UpdatedAt = nullTimePtr(updatedAt)

	return token, nil
}

func (r *refreshTokenRepository) UpdateAccessToken(ctx context.Context, id int, accessToken string) error {
	query := `
		UPDATE refresh_tokens
		SET access_token = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, accessToken, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// Deactivate гасит все активные копии токена; отсутствие токена не считается ошибкой
func (r *refreshTokenRepository) Deactivate(ctx context.Context, value string) error {
	query := `
		UPDATE refresh_tokens
		SET active = FALSE, updated_at = $2
		WHERE value = $1 AND active = TRUE
	`

	_, err := r.executor.ExecContext(ctx, query, value, time.Now())
	return err
}
