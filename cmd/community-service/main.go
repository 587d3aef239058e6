package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	keycloakclient "github.com/gatherly/community-service/internal/clients/keycloak"
	"github.com/gatherly/community-service/internal/config"
	"github.com/gatherly/community-service/internal/logger"
	channelsrepo "github.com/gatherly/community-service/internal/repositories/channels"
	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	serverdebug "github.com/gatherly/community-service/internal/server-debug"
	inmemeventstream "github.com/gatherly/community-service/internal/services/event-stream/in-mem"
	"github.com/gatherly/community-service/internal/services/presence"
	"github.com/gatherly/community-service/internal/store"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	if cfg.Global.IsProduction() && cfg.Stores.PSQL.Debug {
		lg.Warn("psql client in the debug mode")
	}

	gormDB, err := store.NewPSQLClient(store.NewPSQLOptions(
		cfg.Stores.PSQL.Addr,
		cfg.Stores.PSQL.Username,
		cfg.Stores.PSQL.Password,
		cfg.Stores.PSQL.Database,
		store.WithDebug(cfg.Stores.PSQL.Debug),
	))
	if err != nil {
		return fmt.Errorf("create store client: %v", err)
	}

	db := store.NewDatabase(gormDB)
	defer multierr.AppendInvoke(&errReturned, multierr.Close(db))

	// Migrations.
	if err := db.Migrate(
		new(channelsrepo.Channel),
		new(channelsrepo.Member),
		new(messagesrepo.Message),
		new(messagesrepo.Attachment),
		new(messagesrepo.Pin),
		new(messagesrepo.Reaction),
	); err != nil {
		return fmt.Errorf("migrate: %v", err)
	}

	// Repositories.
	channelsRepo, err := channelsrepo.New(channelsrepo.NewOptions(db))
	if err != nil {
		return fmt.Errorf("create channels repo: %v", err)
	}

	msgRepo, err := messagesrepo.New(messagesrepo.NewOptions(db))
	if err != nil {
		return fmt.Errorf("create messages repo: %v", err)
	}

	// Services.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Stores.Redis.Addr,
		Password: cfg.Stores.Redis.Password,
		DB:       cfg.Stores.Redis.DB,
	})
	defer multierr.AppendInvoke(&errReturned, multierr.Close(rdb))

	presenceService, err := presence.New(presence.NewOptions(rdb))
	if err != nil {
		return fmt.Errorf("create presence service: %v", err)
	}

	eventStream := inmemeventstream.New()
	defer multierr.AppendInvoke(&errReturned, multierr.Close(eventStream))

	// Clients.
	kc, err := keycloakclient.New(keycloakclient.NewOptions(
		cfg.Clients.Keycloak.BasePath,
		cfg.Clients.Keycloak.Realm,
		cfg.Clients.Keycloak.ClientID,
		cfg.Clients.Keycloak.ClientSecret,
		keycloakclient.WithDebugMode(cfg.Clients.Keycloak.DebugMode),
	))
	if err != nil {
		return fmt.Errorf("create keycloak client: %v", err)
	}
	if cfg.Global.IsProduction() && cfg.Clients.Keycloak.DebugMode {
		zap.L().Warn("keycloak client in the debug mode")
	}

	// Servers.
	clientV1Swagger, err := clientv1.GetSwagger()
	if err != nil {
		return fmt.Errorf("get client v1 swagger: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	shutdownCh := make(chan struct{})
	eg.Go(func() error {
		<-ctx.Done()
		close(shutdownCh)
		return nil
	})

	srvClient, err := initServerClient(
		cfg.Servers.Client,
		clientV1Swagger,
		kc,
		db,
		channelsRepo,
		msgRepo,
		eventStream,
		presenceService,
		shutdownCh,
		cfg.Global.IsProduction(),
	)
	if err != nil {
		return fmt.Errorf("init client server: %v", err)
	}

	srvDebug, err := serverdebug.New(serverdebug.NewOptions(cfg.Servers.Debug.Addr))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	// Run servers.
	eg.Go(func() error { return srvClient.Run(ctx) })
	eg.Go(func() error { return srvDebug.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
