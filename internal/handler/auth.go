package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/bagdasarian/transfer-market/internal/domain"
)

type principalKey struct{}

// PrincipalFromContext возвращает аутентифицированного пользователя или nil для анонимного запроса
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	principal, _ := ctx.Value(principalKey{}).(*domain.Principal)
	return principal
}

func withPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth пропускает только запросы с действующим токеном доступа
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			h.handleError(w, r, domain.ErrUnauthenticated)
			return
		}

		principal, err := h.userService.Authenticate(r.Context(), token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		next(w, r.WithContext(withPrincipal(r.Context(), principal)))
	}
}

// OptionalAuth пропускает анонимные запросы, но отклоняет недействительный токен
func (h *Handler) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next(w, r)
			return
		}

		principal, err := h.userService.Authenticate(r.Context(), token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		next(w, r.WithContext(withPrincipal(r.Context(), principal)))
	}
}
