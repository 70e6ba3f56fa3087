package main

import (
	"context"

	"go.uber.org/zap"

	"chain-usage-dashboard/migrations"
)

func migrate(ctx context.Context, configPath string) error {
	_, log, db, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer db.Close()
	defer func() { _ = log.Sync() }()

	applied, err := migrations.Apply(ctx, db)
	if err != nil {
		return err
	}

	log.Info("migrations applied", zap.Strings("files", applied))
	return nil
}
