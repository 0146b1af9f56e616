package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	postgresRepo "github.com/execsec/backoffice/internal/adapter/repository/postgres"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/infrastructure/config"
	"github.com/execsec/backoffice/internal/infrastructure/logger"
	"github.com/execsec/backoffice/internal/infrastructure/postgres"
	"github.com/execsec/backoffice/internal/usecase"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice-cli",
		Short: "Backoffice CLI tool",
		Long:  `A command line interface for operating the backoffice service.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the backoffice API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated commands")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(false)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(true)
		},
	})
	rootCmd.AddCommand(migrateCmd)

	seedCmd := &cobra.Command{
		Use:   "seed-admin [username] [password]",
		Short: "Create the secretariat tenant and a superadmin user",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			seedAdmin(args[0], args[1])
		},
	}
	rootCmd.AddCommand(seedCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the financial dashboard summary",
		Run: func(cmd *cobra.Command, args []string) {
			printSummary()
		},
	}
	rootCmd.AddCommand(summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runMigrations(down bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})

	if down {
		err = postgres.RunMigrationsDown(log, cfg.DatabaseURL, "migrations")
	} else {
		err = postgres.RunMigrations(log, cfg.DatabaseURL, "migrations")
	}
	if err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied")
}

func seedAdmin(username, password string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		fmt.Printf("Failed to connect to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	tenantRepo := postgresRepo.NewTenantRepository(pool)
	executiveRepo := postgresRepo.NewExecutiveRepository(pool)
	payableRepo := postgresRepo.NewPayableRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	txManager := postgresRepo.NewTxManager(pool, log)

	tenantUC := usecase.NewTenantUseCase(tenantRepo, executiveRepo, payableRepo, txManager)
	userUC := usecase.NewUserUseCase(userRepo, tenantRepo, nil)

	tenant, err := tenantUC.GetTenantBySlug(ctx, domain.ExecutiveTenantSlug)
	if errors.Is(err, domain.ErrTenantNotFound) {
		tenant, err = tenantUC.CreateTenant(ctx, usecase.CreateTenantInput{
			Name:      "Secretariado Executivo",
			Slug:      domain.ExecutiveTenantSlug,
			Registrar: username,
		})
	}
	if err != nil {
		fmt.Printf("Failed to resolve secretariat tenant: %v\n", err)
		os.Exit(1)
	}

	user, err := userUC.CreateUser(ctx, tenant.ID, usecase.CreateUserInput{
		Username: username,
		Password: password,
		Role:     string(domain.RoleSuperadmin),
		Name:     username,
	})
	if err != nil {
		fmt.Printf("Failed to create superadmin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Superadmin %q created (id=%d, tenant=%s)\n", user.Username, user.ID, tenant.Slug)
}

func printSummary() {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/payables/summary", nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Summary request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Totals map[string]json.Number `json:"totals"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Financial summary")
	for _, key := range []string{"abertoValor", "abertoQtd", "vencidasValor", "vencidasQtd", "parceladasValor", "parceladasQtd", "pagoValor", "pagoQtd", "totalValor", "totalQtd"} {
		fmt.Printf("  %-16s %s\n", key, result.Totals[key])
	}
}
