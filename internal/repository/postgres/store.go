package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/transfer-market/internal/repository"
)

type store struct {
	db       *sql.DB
	executor DBExecutor
}

// NewStore создает хранилище поверх пула соединений
func NewStore(db *sql.DB) repository.Store {
	return &store{db: db, executor: db}
}

func (s *store) Users() repository.UserRepository {
	return &userRepository{executor: s.executor}
}

func (s *store) Teams() repository.TeamRepository {
	return &teamRepository{executor: s.executor}
}

func (s *store) Transfers() repository.TransferRepository {
	return &transferRepository{executor: s.executor}
}

func (s *store) RefreshTokens() repository.RefreshTokenRepository {
	return &refreshTokenRepository{executor: s.executor}
}

// WithinTx открывает транзакцию и передает в fn хранилище, привязанное к ней.
// Вложенный вызов выполняется в уже открытой транзакции.
func (s *store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&store{executor: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
