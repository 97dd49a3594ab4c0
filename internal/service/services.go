package service

import (
	"github.com/socialpulse/socialpulse/internal/config"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/store"
)

type Services struct {
	AuthService      AuthService
	AccountService   AccountService
	PostService      PostService
	AnalyticsService AnalyticsService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		AccountService:   NewAccountService(storages.AccountRepository, logger),
		PostService:      NewPostService(storages.PostRepository, logger),
		AnalyticsService: NewAnalyticsService(storages.UserRepository, storages.AccountRepository, storages.PostRepository, logger),
	}
}
