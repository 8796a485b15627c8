package main

import (
	"context"
	"fmt"
	"medibook-client/internal/app/agent"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/drivers/logger"
	"medibook-client/internal/app/services/shared/notifier"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runner struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	r := &runner{}
	rootCmd := &cobra.Command{
		Use:           "medibook",
		Short:         "Book doctor appointments from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "write structured logs to stdout")

	rootCmd.AddCommand(
		r.loginCmd(),
		r.registerCmd(),
		r.logoutCmd(),
		r.doctorsCmd(),
		r.slotsCmd(),
		r.bookCmd(),
		r.appointmentsCmd(),
		r.cancelCmd(),
		r.profileCmd(),
		migrateCmd(),
		versionCmd(),
	)
	return rootCmd
}

// withAgent builds the booking core for a single command and releases it
// afterwards. Outcomes reach the terminal through the console notifier.
func (r *runner) withAgent(cmd *cobra.Command, fn func(ctx context.Context, a *agent.Agent) error) error {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return err
	}
	if err := config.ApplyTimezone(internalConfig); err != nil {
		return err
	}

	zapLogger := zap.NewNop()
	if r.verbose {
		zapLogger = logger.NewZapLogger(driverConfig, internalConfig)
	}

	bootstrap := &config.Bootstrap{
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	console := notifier.NewConsoleNotifier(logger.NewLogrusLogger(internalConfig, cmd.ErrOrStderr()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := agent.New(ctx, bootstrap, console)
	if err != nil {
		return err
	}
	defer func() {
		if err := bootstrap.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error releasing drivers: %v\n", err)
		}
	}()

	return fn(ctx, a)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\n", Tag)
		},
	}
}
