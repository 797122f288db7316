package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/itemgraph/internal/password"
	"github.com/dtroode/itemgraph/internal/repository/postgres"
	"github.com/dtroode/itemgraph/internal/seed"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				log.Error("failed to migrate database", "error", err)
				return err
			}
			defer conn.Close()

			log.Info("migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo users and items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cost") {
				cost = cfg.Hash.Cost
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				log.Error("failed to initialize storage", "error", err)
				return err
			}
			defer conn.Close()

			res, err := seed.Run(cmd.Context(), postgres.NewStore(conn.DB), password.NewBcrypt(cost), log)
			if err != nil {
				log.Error("failed to seed database", "error", err)
				return fmt.Errorf("failed to seed database: %w", err)
			}

			log.Info("seed complete", "users", res.Users, "items", res.Items)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost for demo passwords (defaults to HASH_COST)")

	return cmd
}
