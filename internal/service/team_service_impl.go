package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type teamService struct {
	store repository.Store
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(store repository.Store) TeamService {
	return &teamService{store: store}
}

// CreateTeam создает команду, владельцем которой становится principal.
// Игрок чужой команды не может создать свою; владеть несколькими командами можно.
func (s *teamService) CreateTeam(ctx context.Context, principal *domain.Principal, name string) (*domain.Team, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var created *domain.Team
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		owner, err := tx.Users().GetByIDForUpdate(ctx, principal.UserID)
		if err != nil {
			return requesterNotFound(err)
		}

		if owner.IsRostered() {
			return domain.ErrRosteredTeamCreation
		}

		team := &domain.Team{
			Name:    name,
			OwnerID: owner.ID,
		}
		if err := tx.Teams().Create(ctx, team); err != nil {
			return err
		}

		created = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetTeam получает команду с игроками по id
func (s *teamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	team, err := s.store.Teams().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, "Team")
	}
	return team, nil
}

// ListTeams возвращает все команды с игроками, без пагинации
func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.store.Teams().List(ctx)
}

// UpdateTeam переименовывает команду; доступно только владельцу
func (s *teamService) UpdateTeam(ctx context.Context, principal *domain.Principal, id int, name string) (*domain.Team, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *domain.Team
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		team, err := s.ownedTeam(ctx, tx, principal, id)
		if err != nil {
			return err
		}

		if err := tx.Teams().UpdateName(ctx, team.ID, name); err != nil {
			return notFound(err, repository.ErrTeamNotFound, "Team")
		}

		updated, err = tx.Teams().GetByID(ctx, team.ID)
		return notFound(err, repository.ErrTeamNotFound, "Team")
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTeam удаляет команду; игроки открепляются, её трансферы удаляются каскадно
func (s *teamService) DeleteTeam(ctx context.Context, principal *domain.Principal, id int) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		team, err := s.ownedTeam(ctx, tx, principal, id)
		if err != nil {
			return err
		}

		return notFound(tx.Teams().Delete(ctx, team.ID), repository.ErrTeamNotFound, "Team")
	})
}

// GetTeamTransfers возвращает исходящие и входящие трансферы команды в порядке статусов
func (s *teamService) GetTeamTransfers(ctx context.Context, principal *domain.Principal, id int) (*domain.TeamTransfers, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	team, err := s.ownedTeam(ctx, s.store, principal, id)
	if err != nil {
		return nil, err
	}

	out, err := s.store.Transfers().ListByInitialTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	in, err := s.store.Transfers().ListByTargetTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &domain.TeamTransfers{Out: out, In: in}, nil
}

func (s *teamService) ownedTeam(ctx context.Context, store repository.Store, principal *domain.Principal, id int) (*domain.Team, error) {
	team, err := store.Teams().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTeamNotFound, "Team")
	}

	if team.OwnerID != principal.UserID {
		return nil, domain.ErrForbidden
	}

	return team, nil
}
