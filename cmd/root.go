package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/server"
)

// RootCommand creates the command that serves the GraphQL API until SIGINT or SIGTERM.
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "weather-activity-api",
		Short:        "GraphQL API for city search, forecasts and activity rankings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}

	if err := setupFlags(rootCmd); err != nil {
		config.GetLogger().Fatalw("Failed to set up flags", "error", err)
	}

	return rootCmd
}

func setupFlags(rootCmd *cobra.Command) error {
	rootCmd.Flags().String("port", config.GetServerPort(), "Port to listen on")
	rootCmd.Flags().Bool("playground", config.IsPlaygroundEnabled(), "Serve GraphQL Playground on GET /graphql")

	if err := viper.BindPFlag("server.port", rootCmd.Flags().Lookup("port")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := viper.BindPFlag("graphql.playground", rootCmd.Flags().Lookup("playground")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	return nil
}

func serve(ctx context.Context) error {
	srv, err := server.New()
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
