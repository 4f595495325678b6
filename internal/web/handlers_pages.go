package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pizzapension/internal/auth"
	"pizzapension/internal/dashboard"
	"pizzapension/internal/models"
	"pizzapension/internal/validation"
)

// homePageHandler は登録フォームを表示します
func (a *App) homePageHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", a.homeData(models.NewRegistration{}, nil, false))
}

// submitFormHandler は登録フォームの送信を処理します
func (a *App) submitFormHandler(c echo.Context) error {
	var form models.NewRegistration
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form body")
	}

	if err := validation.ValidateForm(form); err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			return err
		}
		return c.Render(http.StatusBadRequest, "home.html", a.homeData(form, verr, false))
	}

	stored, err := a.registrations.Insert(c.Request().Context(), form)
	if err != nil {
		c.Logger().Errorf("Failed to store registration: %v", err)
		data := a.homeData(form, nil, false)
		data["error"] = "Ett fel uppstod, försök igen."
		return c.Render(http.StatusInternalServerError, "home.html", data)
	}
	c.Logger().Infof("Registration %d stored", stored.ID)

	return c.Render(http.StatusOK, "home.html", a.homeData(models.NewRegistration{}, nil, true))
}

func (a *App) homeData(form models.NewRegistration, errs *validation.Error, success bool) map[string]interface{} {
	if errs == nil {
		errs = &validation.Error{}
	}
	return map[string]interface{}{
		"form":     form,
		"errors":   errs,
		"success":  success,
		"menu":     models.PizzaMenu,
		"capacity": a.cfg.Event.Capacity,
	}
}

// loginPageHandler はログインフォームを表示します
func (a *App) loginPageHandler(c echo.Context) error {
	if _, ok := a.currentSession(c); ok {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{})
}

// loginFormHandler はログインフォームの送信を処理します
func (a *App) loginFormHandler(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	sess, err := a.auth.Login(c.Request().Context(), username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			return err
		}
		c.Logger().Warnf("Failed login for %q", username)
		return c.Render(http.StatusUnauthorized, "login.html", map[string]interface{}{
			"username": username,
			"error":    "Fel användarnamn eller lösenord.",
		})
	}

	if err := a.startSession(c, sess); err != nil {
		c.Logger().Errorf("Failed to save session: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to login.")
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// adminPageHandler はダッシュボードと登録一覧を表示します
func (a *App) adminPageHandler(c echo.Context) error {
	sess, ok := a.currentSession(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/auth")
	}

	regs, err := a.registrations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "admin.html", map[string]interface{}{
		"username":      sess.Username,
		"registrations": regs,
		"summary":       dashboard.Summarize(regs, a.cfg.Event.Capacity),
		"location":      a.loc,
	})
}

// adminDeleteHandler はダッシュボードの一覧から登録を削除します
func (a *App) adminDeleteHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	if err := a.registrations.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	c.Logger().Infof("Registration %d deleted", id)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// adminLogoutHandler はログアウトしてフォームに戻ります
func (a *App) adminLogoutHandler(c echo.Context) error {
	if err := a.endSession(c); err != nil {
		c.Logger().Errorf("Failed to save session: %v", err)
		return c.String(http.StatusInternalServerError, "Failed to log out.")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
