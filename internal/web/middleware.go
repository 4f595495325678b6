package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// noStore は管理画面のレスポンスをキャッシュさせません
func noStore(c echo.Context) {
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// requireAdmin は有効なセッションのない API 呼び出しを 401 で拒否します
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		noStore(c)
		if !a.auth.IsAuthenticated(a.sessionToken(c)) {
			return echo.ErrUnauthorized
		}
		return next(c)
	}
}

// requireAdminPage は有効なセッションのない訪問者をログインページへ送ります
func (a *App) requireAdminPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		noStore(c)
		if !a.auth.IsAuthenticated(a.sessionToken(c)) {
			return c.Redirect(http.StatusSeeOther, "/auth")
		}
		return next(c)
	}
}
