package handler

type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

type ErrorDetail struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

type SignupUser struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=4"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type SignupRequest struct {
	User *SignupUser `json:"user" validate:"required"`
}

type SigninUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	User *SigninUser `json:"user" validate:"required"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type SessionResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type LoggedOutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

// ProfileResponse: у игрока заполнено team, у остальных ownedTeams
type ProfileResponse struct {
	UserResponse
	Team       *TeamResponse   `json:"team,omitempty"`
	OwnedTeams *[]TeamResponse `json:"ownedTeams,omitempty"`
}

type ProfileEnvelope struct {
	User ProfileResponse `json:"user"`
}

type TeamRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type TeamResponse struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	OwnerID int            `json:"ownerId"`
	Players []UserResponse `json:"players"`
}

type TeamEnvelope struct {
	Team TeamResponse `json:"team"`
}

type TeamsEnvelope struct {
	Teams []TeamResponse `json:"teams"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type TeamRefResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EntityRef struct {
	ID int `json:"id" validate:"required,gt=0"`
}

type CreateTransferRequest struct {
	Player     *EntityRef `json:"player" validate:"required"`
	TargetTeam *EntityRef `json:"targetTeam" validate:"required"`
}

type RespondTransferRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

type TransferResponse struct {
	ID          int              `json:"id"`
	Status      string           `json:"status"`
	Player      *UserResponse    `json:"player"`
	InitialTeam *TeamRefResponse `json:"initialTeam"`
	TargetTeam  *TeamRefResponse `json:"targetTeam"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   *string          `json:"updatedAt,omitempty"`
}

type TransferEnvelope struct {
	Transfer TransferResponse `json:"transfer"`
}

type TransfersEnvelope struct {
	Transfers []TransferResponse `json:"transfers"`
}

type TeamTransfersResponse struct {
	Out []TransferResponse `json:"out"`
	In  []TransferResponse `json:"in"`
}

type TeamTransfersEnvelope struct {
	Transfers TeamTransfersResponse `json:"transfers"`
}

type StatusStatResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TeamRosterStatResponse struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	PlayerCount int    `json:"playerCount"`
}

type StatsResponse struct {
	TransferStats []StatusStatResponse     `json:"transferStats"`
	RosterStats   []TeamRosterStatResponse `json:"rosterStats"`
}
