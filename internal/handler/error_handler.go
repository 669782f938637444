package handler

import (
	"errors"
	"fmt"
	"net/http"

	"agarwood/internal/logging"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler は echo 側のエラー（404ルート・405・bind失敗など）も {"detail"} で返す
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		case error:
			detail = m.Error()
		default:
			detail = fmt.Sprint(m)
		}
	} else {
		logging.Error(c, "request.unhandled", err, nil)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Detail: detail})
}

// GET / の疎通確認
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Hello World"})
}
