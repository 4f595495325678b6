// Package cmd はコマンドラインインターフェースを実装します。
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pizzapension/internal/config"
	"pizzapension/internal/database"
)

// NewRootCmd はコマンドツリーを構築します。呼び出しごとに独立した設定を持つコマンドを返します
func NewRootCmd(version string) *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "pizzapension",
		Short:         "Registration server for Pizza & Pension",
		Long:          `Serves the registration form for the Pizza & Pension event and the admin dashboard listing every registration.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().String("database-driver", "", "database driver: postgres or sqlite")
	root.PersistentFlags().String("database-url", "", "database connection string")
	_ = v.BindPFlag("database.driver", root.PersistentFlags().Lookup("database-driver"))
	_ = v.BindPFlag("database.url", root.PersistentFlags().Lookup("database-url"))

	load := func() (config.Config, error) {
		return config.Load(v, cfgFile)
	}

	root.AddCommand(
		newServeCmd(v, load),
		newCreateAdminCmd(load),
		newHashPasswordCmd(),
	)
	return root
}

// Execute はルートコマンドを実行します
func Execute(version string) error {
	root := NewRootCmd(version)
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}

type loadFunc func() (config.Config, error)

// openDatabase はデータベースに接続し、テーブルを作成します
func openDatabase(ctx context.Context, cfg config.Config) (*database.Database, error) {
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return db, nil
}
