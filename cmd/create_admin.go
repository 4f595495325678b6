package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"pizzapension/internal/auth"
	"pizzapension/internal/database"
)

func newCreateAdminCmd(load loadFunc) *cobra.Command {
	var username, password string
	var ifNotExists bool

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			users := database.NewUserStore(db)
			if ifNotExists {
				exists, err := users.Exists(ctx, username)
				if err != nil {
					return err
				}
				if exists {
					cmd.Printf("User %q already exists\n", username)
					return nil
				}
			}

			user, err := auth.NewService(users, cfg.Session.TTL, 0).CreateUser(ctx, username, password)
			if err != nil {
				return err
			}
			cmd.Printf("Admin user %q created (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password")
	cmd.Flags().BoolVar(&ifNotExists, "if-not-exists", false, "do nothing if the user already exists")
	return cmd
}
