package domain

import "time"

type Team struct {
	ID        int
	Name      string
	OwnerID   int
	Players   []TeamPlayer
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type TeamPlayer struct {
	UserID    int
	Email     string
	FirstName string
	LastName  string
}

// TeamRef - краткое представление команды внутри трансфера
type TeamRef struct {
	ID      int
	Name    string
	OwnerID int
}
