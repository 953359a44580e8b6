// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/shuleni/school-records/internal/config"
	"github.com/shuleni/school-records/internal/db"
	"github.com/shuleni/school-records/internal/kratos"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring/prometheus"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

// bootstrapCmd provisions the first school and its super admin. It
// talks to the database and the identity provider directly, so it runs
// with the same environment as serve.
var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [school-name] [school-code] [admin-email]",
	Short: "Create a school and its first super admin",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs := new(config.EnvSpec)
		if err := envconfig.Process("", specs); err != nil {
			return fmt.Errorf("issues with environment sourcing: %s", err)
		}

		logger := logging.NewLogger(specs.LogLevel)
		defer logger.Sync()

		monitor := prometheus.NewMonitor("school-records", logger)
		tracer := tracing.NewTracer(tracing.NewConfig(false, "", "", logger))

		dbClient, err := db.NewDBClient(db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
		}, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create database client: %v", err)
		}
		defer dbClient.Close()

		s := storage.NewStorage(dbClient, tracer, monitor, logger)
		kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

		ctx := cmd.Context()
		email := args[2]

		identityID, err := kratosClient.GetIdentityIDByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to look up identity: %w", err)
		}

		recovery := ""
		if identityID == "" {
			identityID, err = kratosClient.CreateIdentity(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to create identity: %w", err)
			}

			link, _, err := kratosClient.CreateRecoveryLink(ctx, identityID, "72h")
			if err != nil {
				return fmt.Errorf("failed to create recovery link: %w", err)
			}
			recovery = link
		}

		sc, err := s.CreateSchool(ctx, &types.School{
			Name:      args[0],
			Code:      args[1],
			CreatedBy: identityID,
		})
		if err != nil {
			return fmt.Errorf("failed to create school: %w", err)
		}

		if _, err := s.AddMember(ctx, sc.ID, identityID, types.RoleSuperAdmin); err != nil {
			return fmt.Errorf("failed to add super admin: %w", err)
		}

		fmt.Printf("School created: %s (ID: %s)\n", sc.Name, sc.ID)
		fmt.Printf("Super admin: %s (identity: %s)\n", email, identityID)
		if recovery != "" {
			fmt.Printf("Recovery link: %s\n", recovery)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
