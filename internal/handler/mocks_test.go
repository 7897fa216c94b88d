package handler

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) CreateTeam(ctx context.Context, principal *domain.Principal, name string) (*domain.Team, error) {
	args := m.Called(ctx, principal, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) GetTeam(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *mockTeamService) UpdateTeam(ctx context.Context, principal *domain.Principal, id int, name string) (*domain.Team, error) {
	args := m.Called(ctx, principal, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *mockTeamService) DeleteTeam(ctx context.Context, principal *domain.Principal, id int) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *mockTeamService) GetTeamTransfers(ctx context.Context, principal *domain.Principal, id int) (*domain.TeamTransfers, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamTransfers), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	args := m.Called(ctx, email, password, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) Signin(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockUserService) RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockUserService) Signout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *mockUserService) Me(ctx context.Context, principal *domain.Principal) (*domain.Profile, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type mockTransferService struct {
	mock.Mock
}

func (m *mockTransferService) CreateTransfer(ctx context.Context, principal *domain.Principal, playerID, targetTeamID int) (*domain.Transfer, error) {
	args := m.Called(ctx, principal, playerID, targetTeamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *mockTransferService) RespondToTransfer(ctx context.Context, principal *domain.Principal, transferID int, accept bool) (*domain.Transfer, error) {
	args := m.Called(ctx, principal, transferID, accept)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *mockTransferService) ListPlayerTransfers(ctx context.Context, principal *domain.Principal) ([]*domain.Transfer, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusStat), args.Error(1)
}

func (m *mockStatsService) GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamRosterStat), args.Error(1)
}
