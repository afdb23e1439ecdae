package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	request "resident_service/internal/adapter/http/dto/request"
	"resident_service/internal/adapter/http/routes"
	"resident_service/internal/adapter/persistence/repository"
	"resident_service/internal/infrastructure/advisory"
	"resident_service/internal/infrastructure/catalog"
	"resident_service/internal/infrastructure/config"
	"resident_service/internal/infrastructure/database"
	"resident_service/internal/infrastructure/logger"
	"resident_service/internal/infrastructure/metrics"
	"resident_service/internal/infrastructure/session"
	"resident_service/internal/usecase"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// loadConfig reads the environment and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = portFlag
	}
	if cmd.Flags().Changed("directory") {
		cfg.Directory.Backend = directoryFlag
	}
	if cmd.Flags().Changed("advisory-mock") {
		cfg.Advisory.Mock = advisoryMock
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(level string) (*zap.Logger, func(), error) {
	log, err := logger.New(level)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	restore := zap.ReplaceGlobals(log)
	return log, func() {
		restore()
		_ = log.Sync()
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, cleanup, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.GeneratedSecret {
		log.Warn("[app][main] SESSION_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterGinValidators(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth, tenants, err := newDirectory(ctx, cfg.Directory.Backend)
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	gateway, err := newAdvisoryGateway(cfg.Advisory)
	if err != nil {
		return err
	}

	clk := clock.Real()
	reg := metrics.NewRegistry()
	tokens, err := session.NewJWTIssuer(cfg.Session.Secret, cfg.Session.TTL, clk)
	if err != nil {
		return err
	}

	manager := usecase.NewSessionManager(
		usecase.NewAuthUseCase(auth),
		tokens,
		func() interfaces.IOrderStore { return repository.NewOrderMemoryRepository(clk, reg) },
		usecase.ResidentSessionDeps{
			Catalog:          cat,
			Advisory:         gateway,
			Clock:            clk,
			Logger:           log,
			AdvisoryObserver: reg,
			Debounce:         cfg.Advisory.Debounce,
			Timeout:          cfg.Advisory.Timeout,
		},
		reg,
	)
	defer manager.Close()

	router := routes.NewRouter(routes.Dependencies{
		Sessions: manager,
		Resets:   usecase.NewPasswordResetUseCase(tenants, clk),
		Catalog:  cat,
		Clock:    clk,
		Metrics:  reg.Handler(),
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("[app][main] listening", zap.String("addr", srv.Addr), zap.String("directory", cfg.Directory.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("[app][main] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newDirectory(ctx context.Context, backend string) (interfaces.IAuthProvider, interfaces.ITenantDirectory, error) {
	if backend == config.DirectoryDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewAccountDynamoRepository(ddb), repository.NewTenantDynamoRepository(ddb), nil
	}

	seed, err := repository.LoadDirectorySeed()
	if err != nil {
		return nil, nil, err
	}
	zap.L().Info("[directory][static] loaded bundled directory",
		zap.Int("accounts", len(seed.Accounts)),
		zap.Int("tenants", len(seed.Tenants)),
	)
	return repository.NewAccountStaticRepository(seed.Accounts), repository.NewTenantStaticRepository(seed.Tenants), nil
}

// newAdvisoryGateway falls back to local answers when no API key is set so
// a bare checkout still runs.
func newAdvisoryGateway(cfg config.AdvisoryConfig) (*advisory.OpenAIGateway, error) {
	opts := advisory.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Mock:    cfg.Mock,
	}
	gateway, err := advisory.NewOpenAIGateway(opts)
	if errors.Is(err, advisory.ErrMissingAPIKey) {
		zap.L().Warn("[app][main] no advisory API key, falling back to mock advisories")
		opts.Mock = true
		return advisory.NewOpenAIGateway(opts)
	}
	return gateway, err
}
