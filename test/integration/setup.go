//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/transfer-market/internal/auth"
	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
	pgrepo "github.com/bagdasarian/transfer-market/internal/repository/postgres"
	"github.com/bagdasarian/transfer-market/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// env - сервисы поверх настоящей базы
type env struct {
	db        *sql.DB
	store     repository.Store
	users     service.UserService
	teams     service.TeamService
	transfers service.TransferService
	stats     service.StatsService
}

func setupEnv(t *testing.T) *env {
	db := setupTestDB(t)
	store := pgrepo.NewStore(db)

	tokens := auth.NewTokenManager(auth.TokenConfig{
		Issuer:        "transfer-market-test",
		AccessSecret:  "access",
		AccessTTL:     time.Minute,
		RefreshSecret: "refresh",
		RefreshTTL:    time.Hour,
	})

	return &env{
		db:        db,
		store:     store,
		users:     service.NewUserService(store, tokens, auth.NewPasswordHasher(bcrypt.MinCost)),
		teams:     service.NewTeamService(store),
		transfers: service.NewTransferService(store, nil),
		stats:     service.NewStatsService(pgrepo.NewStatsRepository(db)),
	}
}

// signup регистрирует пользователя и возвращает его Principal
func (e *env) signup(t *testing.T, email string) *domain.Principal {
	t.Helper()
	user, err := e.users.Signup(context.Background(), email, "secret", "First", "Last")
	require.NoError(t, err)
	return &domain.Principal{UserID: user.ID, Email: user.Email}
}

func (e *env) createTeam(t *testing.T, owner *domain.Principal, name string) *domain.Team {
	t.Helper()
	team, err := e.teams.CreateTeam(context.Background(), owner, name)
	require.NoError(t, err)
	return team
}

// recruit проводит трансфер свободного игрока в команду до SUCCESS
func (e *env) recruit(t *testing.T, manager, player *domain.Principal, teamID int) {
	t.Helper()
	ctx := context.Background()
	transfer, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, teamID)
	require.NoError(t, err)
	transfer, err = e.transfers.RespondToTransfer(ctx, player, transfer.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSuccess, transfer.Status)
}

func (e *env) playerTeamID(t *testing.T, userID int) *int {
	t.Helper()
	user, err := e.store.Users().GetByID(context.Background(), userID)
	require.NoError(t, err)
	return user.TeamID
}
