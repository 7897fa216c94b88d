package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type TransferService interface {
	// CreateTransfer открывает переговоры о переходе игрока в команду запрашивающего
	CreateTransfer(ctx context.Context, principal *domain.Principal, playerID, targetTeamID int) (*domain.Transfer, error)

	// RespondToTransfer принимает или отклоняет трансфер от имени команды или игрока
	RespondToTransfer(ctx context.Context, principal *domain.Principal, transferID int, accept bool) (*domain.Transfer, error)

	// ListPlayerTransfers возвращает трансферы, в которых запрашивающий является игроком
	ListPlayerTransfers(ctx context.Context, principal *domain.Principal) ([]*domain.Transfer, error)
}

// TransitionObserver получает уведомления о создании трансферов и смене их статусов
type TransitionObserver interface {
	ObserveCreated(status string)
	ObserveTransition(from, to string)
}

type noopObserver struct{}

func (noopObserver) ObserveCreated(string)            {}
func (noopObserver) ObserveTransition(string, string) {}
