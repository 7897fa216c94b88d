package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrEmailTaken           = errors.New("email already in use")
)
