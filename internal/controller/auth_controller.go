package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/middleware"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/curavet/clinic-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service     service.AuthService
	environment string
}

func CreateAuthController(e *echo.Group, service service.AuthService, environment string) {
	c := AuthController{
		service:     service,
		environment: environment,
	}
	e.POST("/auth/login", c.Login)
	e.GET("/auth/verify", c.Verify)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	token, err := c.service.Login(e.Request().Context(), payload.IDToken)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	e.SetCookie(middleware.NewSessionCookie(token, c.environment))

	return response.WriteSuccessResponse(e)
}

func (c *AuthController) Verify(e echo.Context) error {
	token := middleware.SessionTokenFromRequest(e)
	if token == "" {
		return e.JSON(http.StatusUnauthorized, dto.VerifyResponse{Authenticated: false})
	}

	return e.JSON(http.StatusOK, dto.VerifyResponse{Authenticated: c.service.VerifySession(token)})
}
