package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/transfer-market/internal/auth"
	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/repository"
)

type userService struct {
	store  repository.Store
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
}

// NewUserService создает новый экземпляр UserService
func NewUserService(store repository.Store, tokens *auth.TokenManager, hasher *auth.PasswordHasher) UserService {
	return &userService{
		store:  store,
		tokens: tokens,
		hasher: hasher,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Signup(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) Signin(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	err = s.store.RefreshTokens().Create(ctx, &domain.RefreshToken{
		UserID:      user.ID,
		Value:       refreshToken,
		AccessToken: accessToken,
		Active:      true,
	})
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if refreshToken == "" {
		return nil, domain.ErrMissingRefreshToken
	}

	stored, err := s.store.RefreshTokens().GetActiveByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil || claims.UserID != stored.UserID {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.store.Users().GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.store.RefreshTokens().UpdateAccessToken(ctx, stored.ID, accessToken); err != nil {
		return nil, err
	}

	return &domain.Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) Signout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := s.store.RefreshTokens().Deactivate(ctx, refreshToken)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return err
	}
	return nil
}

// Me возвращает пользователя с его командой, если он игрок, иначе с командами, которыми он управляет
func (s *userService) Me(ctx context.Context, principal *domain.Principal) (*domain.Profile, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	user, err := s.store.Users().GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, requesterNotFound(err)
	}

	profile := &domain.Profile{User: user}

	if user.TeamID != nil {
		team, err := s.store.Teams().GetByID(ctx, *user.TeamID)
		if err != nil {
			return nil, notFound(err, repository.ErrTeamNotFound, "Team")
		}
		profile.Team = team
		return profile, nil
	}

	owned, err := s.store.Teams().ListByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile.OwnedTeams = owned

	return profile, nil
}

func (s *userService) Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error) {
	claims, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.store.Users().GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, requesterNotFound(err)
	}

	return &domain.Principal{UserID: user.ID, Email: user.Email}, nil
}
