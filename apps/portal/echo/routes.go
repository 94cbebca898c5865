package echoportal

import (
	"github.com/casbin/casbin/v2"
	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, deps Deps, rdr *renderer, enforcer *casbin.Enforcer) {
	h := &handler{deps: deps, renderer: rdr}

	e.GET("/", h.home)
	e.GET("/login", h.loginPage)
	e.POST("/login", h.login)
	e.POST("/logout", h.logout)

	guard := []echo.MiddlewareFunc{loginRequired, authorize(enforcer)}
	h.registerStudentPortal(e.Group("/student", guard...))
	h.registerSupervisorPortal(e.Group("/supervisor", guard...))
	h.registerCoordinatorPortal(e.Group("/coordinator", guard...))
}
