package domain

import "fmt"

// Коды ошибок предметной области
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidTransition = "INVALID_TRANSITION"
)

type DomainError struct {
	Code    string
	Message string
	Detail  string
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректные или отсутствующие входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "invalid request",
	}

	// ErrUnauthenticated - нет или неверные учетные данные
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "Unauthorized",
	}

	// ErrForbidden - пользователь аутентифицирован, но действие запрещено
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "You are not authorized to manage this team",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrConflict - нарушение бизнес-правила
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}

	// ErrInvalidTransition - машина состояний трансфера отклоняет действие
	ErrInvalidTransition = &DomainError{
		Code:    CodeInvalidTransition,
		Message: "You cannot act on this transfer",
	}
)

var (
	ErrRosteredTeamCreation = &DomainError{
		Code:    CodeConflict,
		Message: "You can't create a team while being already a player in another one",
	}

	ErrRosteredTransferCreation = &DomainError{
		Code:    CodeConflict,
		Message: "You can't create a transfer while being a player in a team",
	}

	ErrPlayerAlreadyInTeam = &DomainError{
		Code:    CodeConflict,
		Message: "Impossible transfer because the player is already in the target team",
	}

	ErrPlayerIsManager = &DomainError{
		Code:    CodeConflict,
		Message: "You can't recruit this user to your team because they already manage other team(s)",
	}

	ErrManagerCannotJoin = &DomainError{
		Code:    CodeConflict,
		Message: "You can't join a team while managing other team(s)",
	}

	ErrTransferExists = &DomainError{
		Code:    CodeConflict,
		Message: "There is already a transfer process for this player into this team",
	}

	ErrUserExists = &DomainError{
		Code:    CodeConflict,
		Message: "User already exists",
		Detail:  "Email already in use",
	}

	ErrInvalidCredentials = &DomainError{
		Code:    CodeValidation,
		Message: "Email or password not matching",
	}

	ErrMissingRefreshToken = &DomainError{
		Code:    CodeValidation,
		Message: "Missing refresh token",
	}

	ErrInvalidRefreshToken = &DomainError{
		Code:    CodeValidation,
		Message: "Invalid refresh token",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с деталями
func NewValidationError(message, detail string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Detail:  detail,
	}
}
