package handler

import (
	"time"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func domainPlayerToHTTP(player domain.TeamPlayer) UserResponse {
	return UserResponse{
		ID:        player.UserID,
		Email:     player.Email,
		FirstName: player.FirstName,
		LastName:  player.LastName,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	players := make([]UserResponse, 0, len(team.Players))
	for _, player := range team.Players {
		players = append(players, domainPlayerToHTTP(player))
	}

	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		OwnerID: team.OwnerID,
		Players: players,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainProfileToHTTP(profile *domain.Profile) ProfileResponse {
	response := ProfileResponse{UserResponse: domainUserToHTTP(profile.User)}

	if profile.Team != nil {
		team := domainTeamToHTTP(profile.Team)
		response.Team = &team
		return response
	}

	owned := domainTeamsToHTTP(profile.OwnedTeams)
	response.OwnedTeams = &owned
	return response
}

func teamRefToHTTP(ref *domain.TeamRef) *TeamRefResponse {
	if ref == nil {
		return nil
	}
	return &TeamRefResponse{ID: ref.ID, Name: ref.Name}
}

func domainTransferToHTTP(transfer *domain.Transfer) TransferResponse {
	response := TransferResponse{
		ID:          transfer.ID,
		Status:      string(transfer.Status),
		InitialTeam: teamRefToHTTP(transfer.InitialTeam),
		TargetTeam:  teamRefToHTTP(transfer.TargetTeam),
		CreatedAt:   transfer.CreatedAt.Format(time.RFC3339),
	}

	if transfer.Player != nil {
		player := domainPlayerToHTTP(*transfer.Player)
		response.Player = &player
	}

	if transfer.UpdatedAt != nil {
		updatedAt := transfer.UpdatedAt.Format(time.RFC3339)
		response.UpdatedAt = &updatedAt
	}

	return response
}

func domainTransfersToHTTP(transfers []*domain.Transfer) []TransferResponse {
	result := make([]TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		result = append(result, domainTransferToHTTP(transfer))
	}
	return result
}
