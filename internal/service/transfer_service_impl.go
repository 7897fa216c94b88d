package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type transferService struct {
	store    repository.Store
	observer TransitionObserver
}

// NewTransferService создает новый экземпляр TransferService; observer может быть nil
func NewTransferService(store repository.Store, observer TransitionObserver) TransferService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &transferService{store: store, observer: observer}
}

// CreateTransfer создает трансфер. Проверки выполняются по порядку, срабатывает первая нарушенная.
func (s *transferService) CreateTransfer(ctx context.Context, principal *domain.Principal, playerID, targetTeamID int) (*domain.Transfer, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var created *domain.Transfer
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Transfers().AcquireTransferLock(ctx); err != nil {
			return err
		}

		requester, err := tx.Users().GetByID(ctx, principal.UserID)
		if err != nil {
			return requesterNotFound(err)
		}

		if requester.IsRostered() {
			return domain.ErrRosteredTransferCreation
		}

		targetTeam, err := tx.Teams().GetByID(ctx, targetTeamID)
		if err != nil {
			return notFound(err, repository.ErrTeamNotFound, "Target team")
		}

		if requester.ID != targetTeam.OwnerID {
			return domain.ErrForbidden
		}

		player, err := tx.Users().GetByIDForUpdate(ctx, playerID)
		if err != nil {
			return notFound(err, repository.ErrUserNotFound, "Player")
		}

		if player.TeamID != nil && *player.TeamID == targetTeam.ID {
			return domain.ErrPlayerAlreadyInTeam
		}

		if !player.IsRostered() {
			owned, err := tx.Users().CountOwnedTeams(ctx, player.ID)
			if err != nil {
				return err
			}
			if owned > 0 {
				return domain.ErrPlayerIsManager
			}
		}

		exists, err := tx.Transfers().ExistsForPlayerAndTeam(ctx, player.ID, targetTeam.ID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrTransferExists
		}

		transfer := &domain.Transfer{
			PlayerID:      player.ID,
			InitialTeamID: player.TeamID,
			TargetTeamID:  targetTeam.ID,
			Status:        domain.InitialStatus(player.TeamID),
		}
		if err := tx.Transfers().Create(ctx, transfer); err != nil {
			return err
		}

		created, err = tx.Transfers().GetByID(ctx, transfer.ID)
		return notFound(err, repository.ErrTransferNotFound, "Transfer")
	})
	if err != nil {
		return nil, err
	}

	s.observer.ObserveCreated(string(created.Status))
	return created, nil
}

// RespondToTransfer применяет ответ к трансферу.
// При SUCCESS в той же транзакции отклоняются все остальные ожидающие трансферы, а игрок переходит в новую команду.
func (s *transferService) RespondToTransfer(ctx context.Context, principal *domain.Principal, transferID int, accept bool) (*domain.Transfer, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var (
		updated  *domain.Transfer
		previous domain.Status
	)
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Transfers().AcquireTransferLock(ctx); err != nil {
			return err
		}

		transfer, err := tx.Transfers().GetByIDForUpdate(ctx, transferID)
		if err != nil {
			return notFound(err, repository.ErrTransferNotFound, "Transfer")
		}

		next, err := transfer.NextStatus(principal.UserID, accept)
		if err != nil {
			return err
		}

		if next == domain.StatusSuccess {
			// строка игрока блокируется до отклонения остальных трансферов и до смены команды
			player, err := tx.Users().GetByIDForUpdate(ctx, transfer.PlayerID)
			if err != nil {
				return notFound(err, repository.ErrUserNotFound, "Player")
			}

			owned, err := tx.Users().CountOwnedTeams(ctx, player.ID)
			if err != nil {
				return err
			}
			if owned > 0 {
				return domain.ErrManagerCannotJoin
			}
		}

		if err := tx.Transfers().UpdateStatus(ctx, transfer.ID, next); err != nil {
			return notFound(err, repository.ErrTransferNotFound, "Transfer")
		}

		if next == domain.StatusSuccess {
			if _, err := tx.Transfers().RejectPendingExcept(ctx, transfer.ID); err != nil {
				return err
			}

			targetTeamID := transfer.TargetTeamID
			if err := tx.Users().SetTeam(ctx, transfer.PlayerID, &targetTeamID); err != nil {
				return notFound(err, repository.ErrUserNotFound, "Player")
			}
		}

		previous = transfer.Status
		updated, err = tx.Transfers().GetByID(ctx, transfer.ID)
		return notFound(err, repository.ErrTransferNotFound, "Transfer")
	})
	if err != nil {
		return nil, err
	}

	s.observer.ObserveTransition(string(previous), string(updated.Status))
	return updated, nil
}

// ListPlayerTransfers возвращает трансферы игрока в порядке статусов
func (s *transferService) ListPlayerTransfers(ctx context.Context, principal *domain.Principal) ([]*domain.Transfer, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return s.store.Transfers().ListByPlayer(ctx, principal.UserID)
}
