package domain

import "time"

type User struct {
	ID           int
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	TeamID       *int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// IsRostered сообщает, играет ли пользователь в какой-либо команде
func (u *User) IsRostered() bool {
	return u.TeamID != nil
}

// Principal - аутентифицированный пользователь, привязанный к запросу.
// Команда и владение командами читаются заново внутри каждой операции.
type Principal struct {
	UserID int
	Email  string
}

type RefreshToken struct {
	ID          int
	UserID      int
	Value       string
	AccessToken string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Session - результат входа или обновления токена
type Session struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// Profile - пользователь с командой, за которую он играет, либо с командами, которыми он управляет
type Profile struct {
	User       *User
	Team       *Team
	OwnedTeams []*Team
}
