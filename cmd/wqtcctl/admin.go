package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wqtc-api/internal/auth"
	"wqtc-api/internal/domain"
	"wqtc-api/internal/infrastructure/database"
	"wqtc-api/internal/repository"
	"wqtc-api/internal/service"
	"wqtc-api/internal/validator"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long: `Create an admin account that can manage the library.

Running it again for an existing email leaves the account untouched.

Examples:
  wqtcctl create-admin --email admin@example.com --username admin --password s3cret!`,
	Args: cobra.NoArgs,
	RunE: runCreateAdmin,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
	createAdminCmd.Flags().String("email", "", "Admin email address")
	createAdminCmd.Flags().String("username", "", "Display name")
	createAdminCmd.Flags().String("password", "", "Initial password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	if username == "" {
		username = email
	}

	ctx := cmd.Context()
	pool, err := database.NewPostgres(ctx, database.PoolConfig{DSN: appConfig.DSN(), MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	tokens, err := auth.NewTokenManager(appConfig.JWTSecret, appConfig.JWTAlgorithm, appConfig.JWTExpiration)
	if err != nil {
		return err
	}
	svc := service.NewAuthService(repository.NewPostgresUserRepository(pool), tokens, validator.NewValidator())

	user, err := svc.CreateAdmin(ctx, email, username, password)
	if errors.Is(err, domain.ErrAlreadyExists) {
		fmt.Fprintf(cmd.OutOrStdout(), "Admin %s already exists\n", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", user.Email, user.ID)
	return nil
}
