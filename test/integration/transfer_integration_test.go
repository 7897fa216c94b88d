//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_FreeAgentAcceptsOffer(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	manager := e.signup(t, "manager@example.com")
	player := e.signup(t, "player@example.com")
	team := e.createTeam(t, manager, "Lions")

	transfer, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingPlayerApproval, transfer.Status)
	assert.Nil(t, transfer.InitialTeam)
	assert.Equal(t, team.ID, transfer.TargetTeam.ID)

	transfer, err = e.transfers.RespondToTransfer(ctx, player, transfer.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, transfer.Status)

	teamID := e.playerTeamID(t, player.UserID)
	require.NotNil(t, teamID)
	assert.Equal(t, team.ID, *teamID)
}

func TestTransfer_TeamRejectsOffer(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	ownerA := e.signup(t, "owner-a@example.com")
	ownerB := e.signup(t, "owner-b@example.com")
	player := e.signup(t, "player@example.com")
	teamA := e.createTeam(t, ownerA, "A")
	teamT2 := e.createTeam(t, ownerB, "T2")
	e.recruit(t, ownerA, player, teamA.ID)

	transfer, err := e.transfers.CreateTransfer(ctx, ownerB, player.UserID, teamT2.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingTeamApproval, transfer.Status)
	require.NotNil(t, transfer.InitialTeam)
	assert.Equal(t, teamA.ID, transfer.InitialTeam.ID)

	// отвечать за команду может только владелец исходной команды
	_, err = e.transfers.RespondToTransfer(ctx, ownerB, transfer.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = e.transfers.RespondToTransfer(ctx, player, transfer.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	unchanged, err := e.store.Transfers().GetByID(ctx, transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingTeamApproval, unchanged.Status)

	transfer, err = e.transfers.RespondToTransfer(ctx, ownerA, transfer.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejectedByTeam, transfer.Status)

	teamID := e.playerTeamID(t, player.UserID)
	require.NotNil(t, teamID)
	assert.Equal(t, teamA.ID, *teamID)
}

func TestTransfer_TwoStepApproval(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	ownerA := e.signup(t, "owner-a@example.com")
	ownerB := e.signup(t, "owner-b@example.com")
	player := e.signup(t, "player@example.com")
	teamA := e.createTeam(t, ownerA, "A")
	teamB := e.createTeam(t, ownerB, "B")
	e.recruit(t, ownerA, player, teamA.ID)

	transfer, err := e.transfers.CreateTransfer(ctx, ownerB, player.UserID, teamB.ID)
	require.NoError(t, err)

	transfer, err = e.transfers.RespondToTransfer(ctx, ownerA, transfer.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingPlayerApproval, transfer.Status)

	transfer, err = e.transfers.RespondToTransfer(ctx, player, transfer.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, transfer.Status)

	teamID := e.playerTeamID(t, player.UserID)
	require.NotNil(t, teamID)
	assert.Equal(t, teamB.ID, *teamID)

	out, err := e.teams.GetTeamTransfers(ctx, ownerA, teamA.ID)
	require.NoError(t, err)
	require.Len(t, out.Out, 1)
	assert.Equal(t, domain.StatusSuccess, out.Out[0].Status)
}

func TestTransfer_CompetingOffersForSamePlayer(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	managerA := e.signup(t, "manager-a@example.com")
	managerB := e.signup(t, "manager-b@example.com")
	player := e.signup(t, "player@example.com")
	teamA := e.createTeam(t, managerA, "A")
	teamB := e.createTeam(t, managerB, "B")

	offerA, err := e.transfers.CreateTransfer(ctx, managerA, player.UserID, teamA.ID)
	require.NoError(t, err)
	offerB, err := e.transfers.CreateTransfer(ctx, managerB, player.UserID, teamB.ID)
	require.NoError(t, err)

	_, err = e.transfers.RespondToTransfer(ctx, player, offerA.ID, true)
	require.NoError(t, err)

	rejected, err := e.store.Transfers().GetByID(ctx, offerB.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejectedByPlayer, rejected.Status)

	_, err = e.transfers.RespondToTransfer(ctx, player, offerB.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTransfer_SuccessRejectsPendingTransfersOfOtherPlayers(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	managerA := e.signup(t, "manager-a@example.com")
	managerB := e.signup(t, "manager-b@example.com")
	player1 := e.signup(t, "player1@example.com")
	player2 := e.signup(t, "player2@example.com")
	teamA := e.createTeam(t, managerA, "A")
	teamB := e.createTeam(t, managerB, "B")

	offer1, err := e.transfers.CreateTransfer(ctx, managerA, player1.UserID, teamA.ID)
	require.NoError(t, err)
	unrelated, err := e.transfers.CreateTransfer(ctx, managerB, player2.UserID, teamB.ID)
	require.NoError(t, err)

	_, err = e.transfers.RespondToTransfer(ctx, player1, offer1.ID, true)
	require.NoError(t, err)

	// успех одного трансфера отклоняет все ожидающие трансферы в системе, даже чужих игроков
	other, err := e.store.Transfers().GetByID(ctx, unrelated.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejectedByPlayer, other.Status)
	assert.Nil(t, e.playerTeamID(t, player2.UserID))
}

func TestTransfer_RejectedPairCannotBeRetried(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	manager := e.signup(t, "manager@example.com")
	player := e.signup(t, "player@example.com")
	team := e.createTeam(t, manager, "Lions")

	transfer, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
	require.NoError(t, err)
	_, err = e.transfers.RespondToTransfer(ctx, player, transfer.ID, false)
	require.NoError(t, err)

	_, err = e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
	assert.ErrorIs(t, err, domain.ErrTransferExists)
}

func TestTransfer_CreatePreconditions(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	manager := e.signup(t, "manager@example.com")
	otherManager := e.signup(t, "other@example.com")
	player := e.signup(t, "player@example.com")
	team := e.createTeam(t, manager, "Lions")
	otherTeam := e.createTeam(t, otherManager, "Tigers")

	t.Run("ошибка: игрок уже в целевой команде", func(t *testing.T) {
		e.recruit(t, manager, player, team.ID)

		_, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
		assert.ErrorIs(t, err, domain.ErrPlayerAlreadyInTeam)
	})

	t.Run("ошибка: свободный игрок управляет командой", func(t *testing.T) {
		_, err := e.transfers.CreateTransfer(ctx, manager, otherManager.UserID, team.ID)
		assert.ErrorIs(t, err, domain.ErrPlayerIsManager)
	})

	t.Run("ошибка: целевая команда чужая", func(t *testing.T) {
		free := e.signup(t, "free@example.com")

		_, err := e.transfers.CreateTransfer(ctx, manager, free.UserID, otherTeam.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ошибка: игрок не может создавать трансферы", func(t *testing.T) {
		free := e.signup(t, "free2@example.com")

		_, err := e.transfers.CreateTransfer(ctx, player, free.UserID, team.ID)
		assert.ErrorIs(t, err, domain.ErrRosteredTransferCreation)
	})

	t.Run("ошибка: игрок не найден", func(t *testing.T) {
		_, err := e.transfers.CreateTransfer(ctx, manager, 999999, team.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTransfer_ConcurrentResponsesSerialize(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	manager := e.signup(t, "manager@example.com")
	player := e.signup(t, "player@example.com")
	team := e.createTeam(t, manager, "Lions")

	transfer, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
	require.NoError(t, err)

	const attempts = 5
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.transfers.RespondToTransfer(ctx, player, transfer.ID, true)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
	assert.Equal(t, 1, succeeded)
}

func TestTransfer_OfferRacingAcceptanceNeverSurvivesUnapproved(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	managerA := e.signup(t, "manager-a@example.com")
	managerB := e.signup(t, "manager-b@example.com")
	teamA := e.createTeam(t, managerA, "A")
	teamB := e.createTeam(t, managerB, "B")

	for i := 0; i < 10; i++ {
		player := e.signup(t, fmt.Sprintf("player-%d@example.com", i))
		offer, err := e.transfers.CreateTransfer(ctx, managerA, player.UserID, teamA.ID)
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			rival     *domain.Transfer
			rivalErr  error
			acceptErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, acceptErr = e.transfers.RespondToTransfer(ctx, player, offer.ID, true)
		}()
		go func() {
			defer wg.Done()
			rival, rivalErr = e.transfers.CreateTransfer(ctx, managerB, player.UserID, teamB.ID)
		}()
		wg.Wait()

		require.NoError(t, acceptErr)
		require.NoError(t, rivalErr)

		// встречное предложение либо отклонено успехом, либо создано после него и ждет решения команды A
		stored, err := e.store.Transfers().GetByID(ctx, rival.ID)
		require.NoError(t, err)
		switch stored.Status {
		case domain.StatusRejectedByPlayer:
			assert.Nil(t, stored.InitialTeamID)
		case domain.StatusWaitingTeamApproval:
			require.NotNil(t, stored.InitialTeamID)
			assert.Equal(t, teamA.ID, *stored.InitialTeamID)
		default:
			t.Fatalf("unexpected rival status %s", stored.Status)
		}

		teamID := e.playerTeamID(t, player.UserID)
		require.NotNil(t, teamID)
		assert.Equal(t, teamA.ID, *teamID)
	}
}

func TestTransfer_PlayerWhoBecameManagerCannotAccept(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	manager := e.signup(t, "manager@example.com")
	player := e.signup(t, "player@example.com")
	team := e.createTeam(t, manager, "Lions")

	offer, err := e.transfers.CreateTransfer(ctx, manager, player.UserID, team.ID)
	require.NoError(t, err)

	e.createTeam(t, player, "Own club")

	_, err = e.transfers.RespondToTransfer(ctx, player, offer.ID, true)
	assert.ErrorIs(t, err, domain.ErrManagerCannotJoin)

	stored, err := e.store.Transfers().GetByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingPlayerApproval, stored.Status)
	assert.Nil(t, e.playerTeamID(t, player.UserID))

	// отказ остается доступным
	rejected, err := e.transfers.RespondToTransfer(ctx, player, offer.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejectedByPlayer, rejected.Status)
}
