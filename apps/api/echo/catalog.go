package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/catalog"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, deps ServerDeps) {
	api := catalogApi{svc: deps.CatalogSvc}

	g.GET("/tasks", api.queryTasks)
	g.GET("/departments", api.queryDepartments)
}

// Handlers

func (api *catalogApi) queryTasks(ctx echo.Context) error {
	tasks, err := api.svc.Tasks()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *catalogApi) queryDepartments(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Departments())
}
