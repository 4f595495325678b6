// Package config はサーバーの設定を読み込みます。
//
// 値は優先度の低い順に、組み込みのデフォルト値、任意の YAML ファイル、
// PIZZA_* 環境変数、cmd パッケージが束縛するコマンドラインフラグから取得します。
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"pizzapension/internal/models"
)

// Config はサーバーの設定全体です
type Config struct {
	Addr     string         `mapstructure:"addr"`
	LogLevel string         `mapstructure:"log_level"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Event    EventConfig    `mapstructure:"event"`
}

// DatabaseConfig は接続するデータベースを指定します
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

// SessionConfig はログインセッションの設定です
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
	Secure bool          `mapstructure:"secure"`
}

// EventConfig はイベント自体の設定です
type EventConfig struct {
	Capacity    int    `mapstructure:"capacity"`
	EnforceMenu bool   `mapstructure:"enforce_menu"`
	Timezone    string `mapstructure:"timezone"`
}

// Defaults は組み込みの設定を返します
func Defaults() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver: "postgres",
			URL:    "user=user password=password dbname=mydatabase host=db sslmode=disable",
		},
		Session: SessionConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Event: EventConfig{
			Capacity: models.DefaultCapacity,
			Timezone: "Europe/Stockholm",
		},
	}
}

// SetDefaults は Defaults を v に登録します
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("session.secret", d.Session.Secret)
	v.SetDefault("session.ttl", d.Session.TTL)
	v.SetDefault("session.secure", d.Session.Secure)
	v.SetDefault("event.capacity", d.Event.Capacity)
	v.SetDefault("event.enforce_menu", d.Event.EnforceMenu)
	v.SetDefault("event.timezone", d.Event.Timezone)
}

// New はデフォルト値と環境変数の参照を設定した viper を返します。
// PIZZA_DATABASE_URL は database.url に対応します
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("pizza")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load は任意の設定ファイルを読み込み、v を Config にデコードします
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate はリクエスト処理に必要な設定を確認します
func (c Config) Validate() error {
	var errs []error
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("session.secret (PIZZA_SESSION_SECRET) is required"))
	} else if len(c.Session.Secret) < 32 {
		errs = append(errs, errors.New("session.secret must be at least 32 bytes"))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url (PIZZA_DATABASE_URL) is required"))
	}
	if c.Event.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("event.capacity must be positive, got %d", c.Event.Capacity))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location は Event.Timezone を解決します
func (c Config) Location() (*time.Location, error) {
	if c.Event.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Event.Timezone)
	if err != nil {
		return nil, fmt.Errorf("event.timezone: %w", err)
	}
	return loc, nil
}
