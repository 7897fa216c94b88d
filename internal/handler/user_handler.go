package handler

import (
	"net/http"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

const refreshTokenCookie = "refreshToken"

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.userService.Signup(r.Context(), req.User.Email, req.User.Password, req.User.FirstName, req.User.LastName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, UserEnvelope{User: domainUserToHTTP(user)})
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.userService.Signin(r.Context(), req.User.Email, req.User.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    session.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, sessionToHTTP(session))
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	session, err := h.userService.RefreshToken(r.Context(), refreshTokenFromCookie(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToHTTP(session))
}

func (h *Handler) Signout(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Signout(r.Context(), refreshTokenFromCookie(r)); err != nil {
		h.handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, LoggedOutResponse{LoggedOut: true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.Me(r.Context(), PrincipalFromContext(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileEnvelope{User: domainProfileToHTTP(profile)})
}

func refreshTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func sessionToHTTP(session *domain.Session) SessionResponse {
	return SessionResponse{
		User:        domainUserToHTTP(session.User),
		AccessToken: session.AccessToken,
	}
}
