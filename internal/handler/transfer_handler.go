package handler

import "net/http"

func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req CreateTransferRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	transfer, err := h.transferService.CreateTransfer(
		r.Context(),
		PrincipalFromContext(r.Context()),
		req.Player.ID,
		req.TargetTeam.ID,
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TransferEnvelope{Transfer: domainTransferToHTTP(transfer)})
}

func (h *Handler) RespondToTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req RespondTransferRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	transfer, err := h.transferService.RespondToTransfer(r.Context(), PrincipalFromContext(r.Context()), id, *req.Accept)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TransferEnvelope{Transfer: domainTransferToHTTP(transfer)})
}

func (h *Handler) ListMyTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.transferService.ListPlayerTransfers(r.Context(), PrincipalFromContext(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TransfersEnvelope{Transfers: domainTransfersToHTTP(transfers)})
}
