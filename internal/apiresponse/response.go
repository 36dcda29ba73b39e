package apiresponse

import "github.com/labstack/echo/v4"

// Body is the envelope every endpoint answers with. The HTTP status
// always equals StatusCode.
type Body struct {
	Message    string `json:"message"`
	Error      bool   `json:"error"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
}

func Success(c echo.Context, message string, code int, data any) error {
	return c.JSON(code, Body{
		Message:    message,
		Error:      false,
		StatusCode: code,
		Data:       data,
	})
}

func Error(c echo.Context, message string, code int) error {
	return c.JSON(code, Body{
		Message:    message,
		Error:      true,
		StatusCode: code,
		Data:       nil,
	})
}
