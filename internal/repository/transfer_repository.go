package repository

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id int) (*domain.Transfer, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Transfer, error)
	ExistsForPlayerAndTeam(ctx context.Context, playerID, targetTeamID int) (bool, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) error
	RejectPendingExcept(ctx context.Context, exceptID int) (int64, error)
	ListByPlayer(ctx context.Context, playerID int) ([]*domain.Transfer, error)
	ListByInitialTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error)
	ListByTargetTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error)

	// AcquireTransferLock сериализует создание трансферов и ответы на них до конца транзакции
	AcquireTransferLock(ctx context.Context) error
}
