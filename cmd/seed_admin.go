package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "defect-tracker.com/defect-tracker/internal/configs"
	"defect-tracker.com/defect-tracker/internal/constants"
	dto "defect-tracker.com/defect-tracker/internal/data_models"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
)

var seedAdminFlags struct {
	login    string
	password string
	name     string
	email    string
	phone    string
}

// A fresh database has no accounts and the /users endpoints require an
// Admin session, so the first administrator has to come from the CLI.
var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the first administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		userRepo := repository.NewUserRepository(database)

		user, err := userRepo.Create(context.Background(), dto.UserRequest{
			Name:     seedAdminFlags.name,
			Login:    seedAdminFlags.login,
			Password: seedAdminFlags.password,
			Email:    seedAdminFlags.email,
			Phone:    seedAdminFlags.phone,
			Role:     constants.RoleAdmin,
		})
		if err != nil {
			return err
		}

		log.Printf("admin user %q created with id %d", user.Login, user.ID)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedAdminFlags.login, "login", "", "login of the administrator (required)")
	seedAdminCmd.Flags().StringVar(&seedAdminFlags.password, "password", "", "password of the administrator (required)")
	seedAdminCmd.Flags().StringVar(&seedAdminFlags.name, "name", "Administrator", "display name")
	seedAdminCmd.Flags().StringVar(&seedAdminFlags.email, "email", "", "email address")
	seedAdminCmd.Flags().StringVar(&seedAdminFlags.phone, "phone", "", "phone number")
	_ = seedAdminCmd.MarkFlagRequired("login")
	_ = seedAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(seedAdminCmd)
}
