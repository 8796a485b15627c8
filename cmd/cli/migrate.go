package main

import (
	"context"
	"fmt"
	"medibook-client/cmd/migration"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/drivers/database"
	"time"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the MongoDB indexes of the session store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := database.NewMongoDB(ctx, driverConfig)
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			names, err := migration.Run(ctx, client.Database(driverConfig.MongoDB.DbName), ttl)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "expire sessions idle for this long, 0 keeps them")
	return cmd
}
