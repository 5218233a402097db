package handler

import (
	"github.com/labstack/echo/v4"
)

func ResponseError(c echo.Context, status int, message string, err error) error {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(status, resp)
}

func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, SuccessResponse{Message: message, Data: data})
}
