package web

import (
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"pizzapension/internal/auth"
)

const (
	sessionName = "session"
	tokenKey    = "token"
)

// sessionToken はセッションクッキーのログイントークンを返します。なければ空文字列です
func (a *App) sessionToken(c echo.Context) string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenKey].(string)
	return token
}

// currentSession はリクエストの有効なログインセッションを返します
func (a *App) currentSession(c echo.Context) (*auth.Session, bool) {
	return a.auth.Session(a.sessionToken(c))
}

// startSession はログイントークンをセッションクッキーに保存します
func (a *App) startSession(c echo.Context, s *auth.Session) error {
	sess, _ := session.Get(sessionName, c)
	sess.Values[tokenKey] = s.Token
	sess.Options.MaxAge = int(time.Until(s.ExpiresAt) / time.Second)
	return sess.Save(c.Request(), c.Response())
}

// endSession はログインを無効にしてクッキーを失効させます
func (a *App) endSession(c echo.Context) error {
	a.auth.Logout(a.sessionToken(c))

	sess, _ := session.Get(sessionName, c)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
