package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// strictJSONSerializer は echo の JSON シリアライザですが、
// リクエストボディはちょうど一つの JSON 値でなければなりません
type strictJSONSerializer struct {
	echo.DefaultJSONSerializer
}

func (s strictJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(i); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return echo.ErrStatusRequestEntityTooLarge
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Unexpected data after JSON body")
	}
	return nil
}
