package main

import (
	"errors"

	"resident_service/internal/adapter/persistence/repository"
	"resident_service/internal/infrastructure/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runSeedDirectory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, cleanup, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	seed, err := repository.LoadDirectorySeed()
	if err != nil {
		return err
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}

	accounts := repository.NewAccountDynamoRepository(ddb)
	created, skipped := 0, 0
	for _, a := range seed.Accounts {
		err := accounts.Create(ctx, a)
		switch {
		case errors.Is(err, repository.ErrItemExists):
			skipped++
		case err != nil:
			return err
		default:
			created++
		}
	}
	log.Info("[directory][seed] accounts", zap.Int("created", created), zap.Int("skipped", skipped))

	if seedSkipTenant {
		return nil
	}

	tenants := repository.NewTenantDynamoRepository(ddb)
	created, skipped = 0, 0
	for _, t := range seed.Tenants {
		err := tenants.Create(ctx, t)
		switch {
		case errors.Is(err, repository.ErrItemExists):
			skipped++
		case err != nil:
			return err
		default:
			created++
		}
	}
	log.Info("[directory][seed] tenants", zap.Int("created", created), zap.Int("skipped", skipped))
	return nil
}
