package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health"

	gqlctx "github.com/dtroode/itemgraph/internal/api/graphql/context"
	"github.com/dtroode/itemgraph/internal/api/graphql/resolver"
	"github.com/dtroode/itemgraph/internal/api/graphql/router"
	httpServer "github.com/dtroode/itemgraph/internal/api/graphql/server"
	grpcHealth "github.com/dtroode/itemgraph/internal/api/grpc/health"
	grpcRouter "github.com/dtroode/itemgraph/internal/api/grpc/router"
	grpcServer "github.com/dtroode/itemgraph/internal/api/grpc/server"
	"github.com/dtroode/itemgraph/internal/config"
	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/metrics"
	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/password"
	"github.com/dtroode/itemgraph/internal/policy"
	"github.com/dtroode/itemgraph/internal/repository/memory"
	"github.com/dtroode/itemgraph/internal/repository/postgres"
	"github.com/dtroode/itemgraph/internal/seed"
	"github.com/dtroode/itemgraph/internal/server"
	"github.com/dtroode/itemgraph/internal/service"
	"github.com/dtroode/itemgraph/internal/token"
)

func newServeCmd() *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GraphQL HTTP server and the gRPC health server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, inMemory)
		},
	}
	cmd.Flags().BoolVar(&inMemory, "memory", false, "keep data in memory, preloaded with the demo dataset")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, inMemory bool) error {
	restrictions, err := policy.FromNames(cfg.Policy.UserRestrictedFields, cfg.Policy.ItemRestrictedFields)
	if err != nil {
		log.Error("invalid field policy", "error", err)
		return err
	}

	hasher := password.NewBcrypt(cfg.Hash.Cost)

	var (
		store  model.Store
		pinger router.Pinger
	)
	if inMemory {
		mem := memory.New()
		res, err := seed.Run(ctx, mem, hasher, log)
		if err != nil {
			return fmt.Errorf("failed to seed memory store: %w", err)
		}
		log.Info("using in-memory store", "users", res.Users, "items", res.Items)
		store = mem
	} else {
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			log.Error("failed to initialize storage", "error", err)
			return err
		}
		defer conn.Close()
		store = postgres.NewStore(conn.DB)
		pinger = conn
	}

	m := metrics.New()
	tokens := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	authService := service.NewAuth(store, tokens, hasher, log)
	userService := service.NewUsers(store, hasher, log)
	itemService := service.NewItems(store, log, cfg.Items.ClientPostedOn)
	ctxMgr := gqlctx.NewManager()

	res := resolver.New(authService, userService, itemService, restrictions, ctxMgr, m, log)
	handler := router.New(res.Schema(), authService, ctxMgr, m, pinger, log).Register()

	healthServer := health.NewServer()
	checker := grpcHealth.NewChecker(healthServer, pinger, m, cfg.GRPC.HealthInterval, log)

	servers := []model.Server{
		httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port)),
		grpcServer.NewGRPCServer(grpcRouter.New(healthServer, log).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	checkCtx, stopChecker := context.WithCancel(ctx)
	defer stopChecker()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		checker.Run(checkCtx)
	}()

	failed := make(chan struct{}, len(servers))
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			log.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				log.Error("failed to start server", "error", err, "address", s.Address())
				failed <- struct{}{}
			}
		}(s)
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("received interruption signal, shutting down")
	case <-failed:
		log.Info("server failed, shutting down")
		runErr = errors.New("server failed to start")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			log.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}
	stopChecker()

	wg.Wait()
	log.Info("shutdown complete")
	return runErr
}
