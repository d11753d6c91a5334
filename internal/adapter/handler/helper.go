package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/adapter/dto/common"
)

// RespondError maps an error to its HTTP status and a standard error body.
// AppError carries its own status and code; anything else becomes a 500.
func RespondError(c echo.Context, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		details := make(map[string]interface{}, len(appErr.Details))
		for k, v := range appErr.Details {
			details[k] = v
		}
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Error:   appErr.Code.String(),
			Message: appErr.Message,
			Details: details,
			Code:    appErr.Code.String(),
		})
	}
	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error:   errors.ErrorCode_INTERNAL.String(),
		Message: err.Error(),
	})
}

// BindAndValidate binds the request into dst and runs struct validation
func BindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	if err := c.Validate(dst); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}
