package service

import (
	"context"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockStore отдает моки репозиториев; WithinTx вызывает fn на себе и считает транзакции
type MockStore struct {
	UserRepo         *MockUserRepository
	TeamRepo         *MockTeamRepository
	TransferRepo     *MockTransferRepository
	RefreshTokenRepo *MockRefreshTokenRepository

	TxCount int
}

func NewMockStore() *MockStore {
	return &MockStore{
		UserRepo:         new(MockUserRepository),
		TeamRepo:         new(MockTeamRepository),
		TransferRepo:     new(MockTransferRepository),
		RefreshTokenRepo: new(MockRefreshTokenRepository),
	}
}

func (m *MockStore) Users() repository.UserRepository                 { return m.UserRepo }
func (m *MockStore) Teams() repository.TeamRepository                 { return m.TeamRepo }
func (m *MockStore) Transfers() repository.TransferRepository         { return m.TransferRepo }
func (m *MockStore) RefreshTokens() repository.RefreshTokenRepository { return m.RefreshTokenRepo }

func (m *MockStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	m.TxCount++
	return fn(m)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetTeam(ctx context.Context, userID int, teamID *int) error {
	args := m.Called(ctx, userID, teamID)
	return args.Error(0)
}

func (m *MockUserRepository) CountOwnedTeams(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByOwnerID(ctx context.Context, ownerID int) ([]*domain.Team, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) UpdateName(ctx context.Context, id int, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id int) (*domain.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ExistsForPlayerAndTeam(ctx context.Context, playerID, targetTeamID int) (bool, error) {
	args := m.Called(ctx, playerID, targetTeamID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransferRepository) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTransferRepository) RejectPendingExcept(ctx context.Context, exceptID int) (int64, error) {
	args := m.Called(ctx, exceptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) ListByPlayer(ctx context.Context, playerID int) ([]*domain.Transfer, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListByInitialTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListByTargetTeam(ctx context.Context, teamID int) ([]*domain.Transfer, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) AcquireTransferLock(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetActiveByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) UpdateAccessToken(ctx context.Context, id int, accessToken string) error {
	args := m.Called(ctx, id, accessToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Deactivate(ctx context.Context, value string) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTransferStatsByStatus(ctx context.Context) ([]*domain.StatusStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusStat), args.Error(1)
}

func (m *MockStatsRepository) GetTeamRosterStats(ctx context.Context) ([]*domain.TeamRosterStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamRosterStat), args.Error(1)
}

type MockTransitionObserver struct {
	mock.Mock
}

func (m *MockTransitionObserver) ObserveCreated(status string) {
	m.Called(status)
}

func (m *MockTransitionObserver) ObserveTransition(from, to string) {
	m.Called(from, to)
}
