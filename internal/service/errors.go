package service

import (
	"errors"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

// requirePrincipal отклоняет анонимные вызовы
func requirePrincipal(principal *domain.Principal) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// notFound переводит ошибку репозитория в NOT_FOUND с именем ресурса
func notFound(err error, sentinel error, resource string) error {
	if errors.Is(err, sentinel) {
		return domain.NewNotFoundError(resource)
	}
	return err
}

// requesterNotFound: пользователь из токена исчез из базы
func requesterNotFound(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.ErrUnauthenticated
	}
	return err
}
