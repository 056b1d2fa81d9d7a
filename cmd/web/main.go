package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/user"

	"github.com/revlytic/bplan/pkg/server"
	"github.com/revlytic/bplan/pkg/services/config"
	planservice "github.com/revlytic/bplan/pkg/services/plan"
	"github.com/revlytic/bplan/pkg/store/sqlite"
	planstore "github.com/revlytic/bplan/pkg/store/sqlite/plan"
	sharestore "github.com/revlytic/bplan/pkg/store/sqlite/share"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	dbPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the business plan portal server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.bplancfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the engagement profiles file (default is $HOME/.bplancfg)")
	rootCmd.Flags().StringVar(&dbPath, "db", "bplan.db",
		"Path to the plans database file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create profiles registry: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: dbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open plans database: %w", err)
	}

	plans, err := planstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create plan store: %w", err)
	}
	shares, err := sharestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create share store: %w", err)
	}
	planMgmt := planservice.NewManagementService(plans, shares)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following engagements:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, name := range profiles {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			continue
		}
		logger.Info().Msgf("Name: `%s`, Currency: `%s`", profile.Name, profile.Currency)
	}

	mux := server.ConfigureRouter(&logger, server.Dependencies{
		Plans: planMgmt,
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("starting server on %s", addr)

	return http.ListenAndServe(addr, mux)
}
