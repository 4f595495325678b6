package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"pizzapension/internal/dashboard"
	"pizzapension/internal/validation"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// registerHandler は誰からでも参加登録を受け付けます
func (a *App) registerHandler(c echo.Context) error {
	input, err := decodeBody(c)
	if err != nil {
		return err
	}

	reg, err := validation.ValidateRegistration(input, a.validateOpts)
	if err != nil {
		return err
	}

	stored, err := a.registrations.Insert(c.Request().Context(), reg)
	if err != nil {
		return err
	}
	c.Logger().Infof("Registration %d stored", stored.ID)

	return c.JSON(http.StatusCreated, stored)
}

// decodeBody は JSON オブジェクトまたはフォームのボディを map に読み込みます。
// フォームの値は文字列になり、JSON の値は型を保つので型違いの項目を検出できます
func decodeBody(c echo.Context) (map[string]any, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(ctype, echo.MIMEApplicationForm) || strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		params, err := c.FormParams()
		if err != nil {
			return nil, bodyError(err, "Invalid form body")
		}
		input := make(map[string]any, len(params))
		for k, v := range params {
			if len(v) > 0 {
				input[k] = v[0]
			}
		}
		return input, nil
	}

	var input map[string]any
	if err := c.Bind(&input); err != nil {
		return nil, bodyError(err, "Invalid JSON body")
	}
	if input == nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body")
	}
	return input, nil
}

// bodyError はボディ上限の 413 をそのまま返し、それ以外を 400 にします
func bodyError(err error, msg string) error {
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return echo.ErrStatusRequestEntityTooLarge
	}
	var herr *echo.HTTPError
	if errors.As(err, &herr) && herr.Code == http.StatusUnsupportedMediaType {
		return herr
	}
	return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
}

// listRegistrationsHandler は全ての登録を返します
func (a *App) listRegistrationsHandler(c echo.Context) error {
	regs, err := a.registrations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, regs)
}

// deleteRegistrationHandler は登録を削除します。存在しない ID も成功します
func (a *App) deleteRegistrationHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}

	if err := a.registrations.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	c.Logger().Infof("Registration %d deleted", id)

	return c.String(http.StatusOK, http.StatusText(http.StatusOK))
}

// statsHandler はダッシュボードの集計を返します
func (a *App) statsHandler(c echo.Context) error {
	regs, err := a.registrations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard.Summarize(regs, a.cfg.Event.Capacity))
}

// exportHandler は全ての登録を xlsx の添付ファイルとして送ります
func (a *App) exportHandler(c echo.Context) error {
	regs, err := a.registrations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dashboard.WriteWorkbook(&buf, regs, a.loc); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+dashboard.ExportFilename+`"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
