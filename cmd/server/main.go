package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/useraccounts/go-user-accounts/internal/config"
	"github.com/useraccounts/go-user-accounts/internal/crypto"
	"github.com/useraccounts/go-user-accounts/internal/handler"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/notifier"
	"github.com/useraccounts/go-user-accounts/internal/server"
	"github.com/useraccounts/go-user-accounts/internal/service"
	"github.com/useraccounts/go-user-accounts/internal/store"
	"github.com/useraccounts/go-user-accounts/internal/tokens"
	"github.com/useraccounts/go-user-accounts/internal/workers"
	"golang.org/x/crypto/bcrypt"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("account-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	actionTokens := newActionTokenStore(cfg.Storage.Redis, log)

	mailer, err := notifier.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	mailWorker := workers.NewMailWorker(mailer, cfg.Mail.QueueSize, log)
	workers.NewWorkers(mailWorker).Run()
	defer mailWorker.Stop()

	links := notifier.NewLinkBuilder(cfg.App.ConfirmationBaseURL, cfg.App.PasswordResetBaseURL)
	hasher := crypto.NewBcryptHasher(bcrypt.DefaultCost)

	services := service.NewServices(*storages, actionTokens, hasher, mailWorker, links, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newActionTokenStore selects the action-token backend. With a configured
// Redis address tokens live in Redis and survive restarts; otherwise an
// in-process store is used, which only suits a single-instance deployment.
func newActionTokenStore(cfg config.Redis, log *logger.Logger) tokens.Store {
	if cfg.Address == "" {
		log.Warn().Msg("no redis address configured, using in-process action-token store")
		return tokens.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Address})
	return tokens.NewRedisStore(client, cfg.KeyPrefix)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
