package domain

import "time"

type Transfer struct {
	ID            int
	PlayerID      int
	InitialTeamID *int
	TargetTeamID  int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Player      *TeamPlayer
	InitialTeam *TeamRef
	TargetTeam  *TeamRef
}

// TeamTransfers - трансферы команды, разделенные по направлению
type TeamTransfers struct {
	Out []*Transfer
	In  []*Transfer
}

type Status string

// Порядок объявления задает порядок сортировки при выводе списков
const (
	StatusWaitingTeamApproval   Status = "WAITING_TEAM_APPROVAL"
	StatusRejectedByTeam        Status = "REJECTED_BY_TEAM"
	StatusWaitingPlayerApproval Status = "WAITING_PLAYER_APPROVAL"
	StatusRejectedByPlayer      Status = "REJECTED_BY_PLAYER"
	StatusSuccess               Status = "SUCCESS"
)

// Statuses возвращает все статусы в порядке объявления
func Statuses() []Status {
	return []Status{
		StatusWaitingTeamApproval,
		StatusRejectedByTeam,
		StatusWaitingPlayerApproval,
		StatusRejectedByPlayer,
		StatusSuccess,
	}
}

// IsTerminal сообщает, завершен ли процесс трансфера
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejectedByTeam, StatusRejectedByPlayer, StatusSuccess:
		return true
	}
	return false
}

// IsWaiting сообщает, ожидает ли трансфер чьего-либо решения
func (s Status) IsWaiting() bool {
	return s == StatusWaitingTeamApproval || s == StatusWaitingPlayerApproval
}

// WaitingStatuses возвращает статусы, в которых трансфер ждет решения, в порядке объявления
func WaitingStatuses() []Status {
	var waiting []Status
	for _, status := range Statuses() {
		if status.IsWaiting() {
			waiting = append(waiting, status)
		}
	}
	return waiting
}

// InitialStatus возвращает стартовый статус: одобрение команды нужно только если у игрока есть команда
func InitialStatus(playerTeamID *int) Status {
	if playerTeamID != nil {
		return StatusWaitingTeamApproval
	}
	return StatusWaitingPlayerApproval
}

type StatusStat struct {
	Status Status
	Count  int
}

type TeamRosterStat struct {
	TeamID      int
	TeamName    string
	PlayerCount int
}

// NextStatus вычисляет новый статус трансфера после ответа пользователя requesterID.
// Для команды отвечает владелец исходной команды, для игрока - сам игрок.
func (t *Transfer) NextStatus(requesterID int, accept bool) (Status, error) {
	if t.Status.IsTerminal() {
		return t.Status, ErrInvalidTransition
	}

	switch {
	case t.Status == StatusWaitingTeamApproval && t.InitialTeam != nil && t.InitialTeam.OwnerID == requesterID:
		if accept {
			return StatusWaitingPlayerApproval, nil
		}
		return StatusRejectedByTeam, nil
	case t.Status == StatusWaitingPlayerApproval && t.PlayerID == requesterID:
		if accept {
			return StatusSuccess, nil
		}
		return StatusRejectedByPlayer, nil
	}
	return t.Status, ErrInvalidTransition
}
