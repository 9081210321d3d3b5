package response

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func WriteSuccessResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	// Unknown errors keep their 500 but never leak their message.
	if !errs.IsClientSafe(err) {
		err = errs.ErrInternalServer
	}

	return c.JSON(statusCode, ErrorResponse{Error: err.Error()})
}
