package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/middleware"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/labstack/echo/v4"
)

const loginPage = `<!DOCTYPE html>
<html><head><title>Curavet Admin</title></head>
<body><h1>Curavet Admin Login</h1><div id="login-root"></div></body></html>`

const dashboardPage = `<!DOCTYPE html>
<html><head><title>Curavet Dashboard</title></head>
<body><h1>Curavet Dashboard</h1><div id="dashboard-root"></div></body></html>`

// PageController guards the two admin pages: the bare login path forwards
// an authenticated visitor to the product list, and the product list sends
// an unauthenticated visitor back to login.
type PageController struct {
	service service.AuthService
}

func CreatePageController(e *echo.Echo, service service.AuthService) {
	c := PageController{
		service: service,
	}
	e.GET("/admin", c.LoginPage)
	e.GET("/admin/products", c.ProductsPage)
}

func (c *PageController) isAuthenticated(e echo.Context) bool {
	token := middleware.SessionTokenFromRequest(e)
	return token != "" && c.service.VerifySession(token)
}

func (c *PageController) LoginPage(e echo.Context) error {
	if c.isAuthenticated(e) {
		return e.Redirect(http.StatusFound, "/admin/products")
	}

	return e.HTML(http.StatusOK, loginPage)
}

func (c *PageController) ProductsPage(e echo.Context) error {
	if !c.isAuthenticated(e) {
		return e.Redirect(http.StatusFound, "/admin")
	}

	return e.HTML(http.StatusOK, dashboardPage)
}
