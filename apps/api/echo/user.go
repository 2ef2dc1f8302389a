package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

var errUsrNotFoundInCtx = errors.New("user object not found in echo.Context")

type userApi struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := userApi{svc: deps.UserSvc, validate: deps.Validate}

	ug := g.Group("/users", jwt)
	ug.GET("/me", api.retrieveMe)
	ug.GET("", api.query, adminMiddleware(api.svc))
	ug.POST("", api.create, adminMiddleware(api.svc))
	ug.GET("/:id", api.retrieve, adminMiddleware(api.svc))
	ug.PUT("/:id", api.update, selfOrAdminMiddleware(api.svc))
	ug.POST("/:id/tasks", api.addCompletedTask, selfMiddleware(api.svc))
	ug.DELETE("/:id/tasks/:taskId", api.removeCompletedTask, selfMiddleware(api.svc))
}

// Handlers

func (api *userApi) retrieveMe(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	usr, err := api.svc.GetByID(claims.UserID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	usr, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) create(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) update(ctx echo.Context) error {
	usr, ok := ctx.Get(contextObjectKey).(user.User)
	if !ok {
		return errors.Wrap(errUsrNotFoundInCtx, "retrieving object from context")
	}

	var data user.UpdateUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	if err := data.Validate(usr, api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Update(usr.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) addCompletedTask(ctx echo.Context) error {
	usr, ok := ctx.Get(contextObjectKey).(user.User)
	if !ok {
		return errors.Wrap(errUsrNotFoundInCtx, "retrieving object from context")
	}

	// the payload is the bare task id
	var taskID int
	if err := ctx.Bind(&taskID); err != nil {
		return errors.Wrap(err, "binding task id")
	}

	usr, err := api.svc.AddCompletedTask(usr.ID, taskID)
	if err != nil {
		switch errors.Cause(err) {
		case user.ErrTaskExists:
			return errTaskAlreadyAdded
		case user.ErrNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "adding completed task")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) removeCompletedTask(ctx echo.Context) error {
	usr, ok := ctx.Get(contextObjectKey).(user.User)
	if !ok {
		return errors.Wrap(errUsrNotFoundInCtx, "retrieving object from context")
	}

	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		return errHttpNotFound
	}

	usr, err = api.svc.RemoveCompletedTask(usr.ID, taskID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "removing completed task")
	}
	return ctx.JSON(http.StatusOK, usr)
}
