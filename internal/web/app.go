// Package web は登録フォームと管理ダッシュボード、JSON API を提供します。
package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"pizzapension/internal/auth"
	"pizzapension/internal/config"
	"pizzapension/internal/models"
	"pizzapension/internal/validation"
)

// bodyLimit はリクエストボディの上限です
const bodyLimit = "100K"

// RegistrationStore はハンドラが必要とする永続化層です
type RegistrationStore interface {
	Insert(ctx context.Context, in models.NewRegistration) (models.Registration, error)
	ListAll(ctx context.Context) ([]models.Registration, error)
	DeleteByID(ctx context.Context, id int64) error
}

// App はストアとサービスを echo インスタンスに結び付けます
type App struct {
	echo          *echo.Echo
	registrations RegistrationStore
	auth          *auth.Service
	cfg           config.Config
	loc           *time.Location
	validateOpts  validation.Options
}

// New はアプリケーションを構築します。cfg は Validate を通過している必要があります
func New(cfg config.Config, registrations RegistrationStore, authService *auth.Service) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(parseLevel(cfg.LogLevel))
	e.Renderer = newTemplateRenderer()
	e.JSONSerializer = strictJSONSerializer{}

	e.Server.ReadTimeout = 5 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = time.Minute

	app := &App{
		echo:          e,
		registrations: registrations,
		auth:          authService,
		cfg:           cfg,
		loc:           loc,
		validateOpts:  validation.Options{EnforceMenu: cfg.Event.EnforceMenu},
	}

	e.HTTPErrorHandler = app.errorHandler

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.TTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				c.Logger().Warnf("%s %s %d %s %s: %v", v.Method, v.URI, v.Status, v.Latency, v.RemoteIP, v.Error)
				return nil
			}
			c.Logger().Infof("%s %s %d %s %s", v.Method, v.URI, v.Status, v.Latency, v.RemoteIP)
			return nil
		},
	}))
	e.Use(session.Middleware(store))

	app.routes()
	return app, nil
}

// ServeHTTP は App を http.Handler として使えるようにします
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.echo.ServeHTTP(w, r)
}

// Logger はアプリケーションのロガーを返します
func (a *App) Logger() echo.Logger {
	return a.echo.Logger
}

// Run は ctx がキャンセルされるまで cfg.Addr で待ち受け、その後グレースフルに停止します
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.echo.Logger.Infof("Starting server on %s", a.cfg.Addr)
		errCh <- a.echo.Start(a.cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.echo.Logger.Info("Shutting down server")
	return a.echo.Shutdown(shutdownCtx)
}

func parseLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
