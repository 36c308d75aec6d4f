package service

import (
	"github.com/elisee/account-service/internal/config"
	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, notifier Notifier, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: NewAccountService(storages.Accounts, cfg.App, notifier, logger),
		AppInfoService: appInfoService,
	}, nil
}
