package repository

import "context"

// Store объединяет репозитории, работающие через одно соединение или одну транзакцию
type Store interface {
	Users() UserRepository
	Teams() TeamRepository
	Transfers() TransferRepository
	RefreshTokens() RefreshTokenRepository

	// WithinTx выполняет fn в транзакции: commit при nil, rollback при ошибке
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
