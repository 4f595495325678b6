package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzapension/internal/auth"
	"pizzapension/internal/validation"
)

// errorHandler はエラーをプレーンテキストのレスポンスに変換します。
// ストレージ障害を含め、認識できないものは一般的な 500 になります
func (a *App) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var verr *validation.Error
	var herr *echo.HTTPError
	switch {
	case errors.As(err, &verr):
		status, msg = http.StatusBadRequest, verr.Error()
	case errors.Is(err, auth.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized)
	case errors.As(err, &herr):
		status = herr.Code
		if m, ok := herr.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.String(status, msg)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
