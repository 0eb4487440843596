package handlers

import (
	"log/slog"

	"github.com/finverse-labs/cardinfo-service/internal/application/services"
)

type Handlers struct {
	cardInfoService *services.CardInfoService
	logger          *slog.Logger
}

func NewHandlers(cardInfoService *services.CardInfoService, logger *slog.Logger) *Handlers {
	return &Handlers{
		cardInfoService: cardInfoService,
		logger:          logger,
	}
}
