package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzapension/internal/auth"
)

type credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// loginHandler は管理者を認証してセッションクッキーを設定します
func (a *App) loginHandler(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login body")
	}

	sess, err := a.auth.Login(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.Logger().Warnf("Failed login for %q", creds.Username)
		}
		return err
	}

	if err := a.startSession(c, sess); err != nil {
		return err
	}
	c.Logger().Infof("User %q logged in", sess.Username)

	return c.JSON(http.StatusOK, userResponse{ID: sess.UserID, Username: sess.Username})
}

// logoutHandler はセッションを終了します。二回目のログアウトも成功します
func (a *App) logoutHandler(c echo.Context) error {
	if err := a.endSession(c); err != nil {
		return err
	}
	return c.String(http.StatusOK, http.StatusText(http.StatusOK))
}

// userHandler はログイン中の管理者を返します
func (a *App) userHandler(c echo.Context) error {
	sess, ok := a.currentSession(c)
	if !ok {
		return echo.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, userResponse{ID: sess.UserID, Username: sess.Username})
}
