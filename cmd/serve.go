package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pizzapension/internal/auth"
	"pizzapension/internal/database"
	"pizzapension/internal/web"
)

func newServeCmd(v *viper.Viper, load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			authService := auth.NewService(database.NewUserStore(db), cfg.Session.TTL, time.Hour)
			app, err := web.New(cfg, database.NewRegistrationStore(db), authService)
			if err != nil {
				return err
			}
			app.Logger().Infof("Connected to %s database", db.Driver())

			return app.Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "HTTP listen address (default :8080)")
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}
