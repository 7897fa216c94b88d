package handler

import (
	"github.com/bagdasarian/transfer-market/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	teamService     service.TeamService
	userService     service.UserService
	transferService service.TransferService
	statsService    service.StatsService

	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(
	teamService service.TeamService,
	userService service.UserService,
	transferService service.TransferService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		teamService:     teamService,
		userService:     userService,
		transferService: transferService,
		statsService:    statsService,
		validate:        newValidator(),
		logger:          logger,
	}
}
