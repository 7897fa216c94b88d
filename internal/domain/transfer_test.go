package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestInitialStatus(t *testing.T) {
	t.Run("игрок без команды сразу ждет своего решения", func(t *testing.T) {
		assert.Equal(t, StatusWaitingPlayerApproval, InitialStatus(nil))
	})

	t.Run("игрок с командой ждет решения команды", func(t *testing.T) {
		assert.Equal(t, StatusWaitingTeamApproval, InitialStatus(intPtr(3)))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusWaitingTeamApproval:   false,
		StatusRejectedByTeam:        true,
		StatusWaitingPlayerApproval: false,
		StatusRejectedByPlayer:      true,
		StatusSuccess:               true,
	}
	for _, status := range Statuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), string(status))
		assert.Equal(t, !terminal[status], status.IsWaiting(), string(status))
	}
}

func TestWaitingStatuses(t *testing.T) {
	assert.Equal(t, []Status{StatusWaitingTeamApproval, StatusWaitingPlayerApproval}, WaitingStatuses())
}

func TestStatuses_DeclarationOrder(t *testing.T) {
	assert.Equal(t, []Status{
		"WAITING_TEAM_APPROVAL",
		"REJECTED_BY_TEAM",
		"WAITING_PLAYER_APPROVAL",
		"REJECTED_BY_PLAYER",
		"SUCCESS",
	}, Statuses())
}

func TestTransfer_NextStatus(t *testing.T) {
	const (
		playerID       = 10
		initialOwnerID = 20
		targetOwnerID  = 30
	)

	newTransfer := func(status Status) *Transfer {
		return &Transfer{
			ID:            1,
			PlayerID:      playerID,
			InitialTeamID: intPtr(1),
			TargetTeamID:  2,
			Status:        status,
			InitialTeam:   &TeamRef{ID: 1, Name: "A", OwnerID: initialOwnerID},
			TargetTeam:    &TeamRef{ID: 2, Name: "B", OwnerID: targetOwnerID},
		}
	}

	tests := []struct {
		name      string
		status    Status
		requester int
		accept    bool
		want      Status
		wantErr   bool
	}{
		{"команда принимает", StatusWaitingTeamApproval, initialOwnerID, true, StatusWaitingPlayerApproval, false},
		{"команда отклоняет", StatusWaitingTeamApproval, initialOwnerID, false, StatusRejectedByTeam, false},
		{"игрок принимает", StatusWaitingPlayerApproval, playerID, true, StatusSuccess, false},
		{"игрок отклоняет", StatusWaitingPlayerApproval, playerID, false, StatusRejectedByPlayer, false},
		{"игрок не может отвечать за команду", StatusWaitingTeamApproval, playerID, true, "", true},
		{"владелец целевой команды не может отвечать за исходную", StatusWaitingTeamApproval, targetOwnerID, true, "", true},
		{"владелец исходной команды не может отвечать за игрока", StatusWaitingPlayerApproval, initialOwnerID, false, "", true},
		{"успешный трансфер не меняется", StatusSuccess, playerID, false, "", true},
		{"отклоненный командой трансфер не меняется", StatusRejectedByTeam, initialOwnerID, true, "", true},
		{"отклоненный игроком трансфер не меняется", StatusRejectedByPlayer, playerID, true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := newTransfer(tt.status)
			got, err := transfer.NextStatus(tt.requester, tt.accept)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				assert.Equal(t, tt.status, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("без исходной команды одобрение команды невозможно", func(t *testing.T) {
		transfer := newTransfer(StatusWaitingTeamApproval)
		transfer.InitialTeam = nil
		_, err := transfer.NextStatus(initialOwnerID, true)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	})
}

func TestDomainError_Is(t *testing.T) {
	t.Run("ошибки с одинаковым кодом совпадают", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTransferExists, ErrConflict))
		assert.True(t, errors.Is(NewNotFoundError("team"), ErrNotFound))
	})

	t.Run("ошибки с разными кодами не совпадают", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTransferExists, ErrNotFound))
	})

	t.Run("детали добавляются к сообщению", func(t *testing.T) {
		assert.Equal(t, "User already exists: Email already in use", ErrUserExists.Error())
	})
}
