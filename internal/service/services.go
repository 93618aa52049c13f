package service

import (
	"github.com/useraccounts/go-user-accounts/internal/config"
	"github.com/useraccounts/go-user-accounts/internal/crypto"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/notifier"
	"github.com/useraccounts/go-user-accounts/internal/store"
	"github.com/useraccounts/go-user-accounts/internal/tokens"
	"github.com/useraccounts/go-user-accounts/internal/workers"
)

type Services struct {
	AccountService AccountService
}

func NewServices(
	storages store.Storages,
	actionTokens tokens.Store,
	hasher crypto.Hasher,
	mail workers.MailQueue,
	links *notifier.LinkBuilder,
	cfg config.App,
	logger *logger.Logger,
) *Services {
	return &Services{
		AccountService: NewAccountService(storages.AccountRepository, actionTokens, hasher, mail, links, cfg, logger),
	}
}
