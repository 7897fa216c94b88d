package handler

import "net/http"

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	transferStats, err := h.statsService.GetTransferStatsByStatus(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rosterStats, err := h.statsService.GetTeamRosterStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := StatsResponse{
		TransferStats: make([]StatusStatResponse, len(transferStats)),
		RosterStats:   make([]TeamRosterStatResponse, len(rosterStats)),
	}

	for i, stat := range transferStats {
		response.TransferStats[i] = StatusStatResponse{
			Status: string(stat.Status),
			Count:  stat.Count,
		}
	}

	for i, stat := range rosterStats {
		response.RosterStats[i] = TeamRosterStatResponse{
			TeamID:      stat.TeamID,
			TeamName:    stat.TeamName,
			PlayerCount: stat.PlayerCount,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
