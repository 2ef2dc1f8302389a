package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RedSolnishko/Digital-Teaching-Assistant/core/user"
)

func adminMiddleware(svc *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctxUsr, err := getContextUser(ctx, svc)
			if err != nil {
				return err
			}
			if !ctxUsr.IsAdmin() {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

// selfOrAdminMiddleware allows the route when the caller is the targeted user
// or an admin, and loads the target user into the context under "object".
func selfOrAdminMiddleware(svc *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctxUsr, err := getContextUser(ctx, svc)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				return errHttpNotFound
			}
			if ctxUsr.ID != id && !ctxUsr.IsAdmin() {
				return errHttpForbidden
			}

			usr, err := svc.GetByID(id)
			if err != nil {
				if errors.Cause(err) == user.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding user by ID")
			}
			ctx.Set(contextObjectKey, usr)
			return next(ctx)
		}
	}
}

// selfMiddleware restricts the route to the user it targets; admins get no
// special access to another user's completed-task set.
func selfMiddleware(svc *user.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctxUsr, err := getContextUser(ctx, svc)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil {
				return errHttpNotFound
			}
			if ctxUsr.ID != id {
				return errHttpForbidden
			}

			ctx.Set(contextObjectKey, ctxUsr)
			return next(ctx)
		}
	}
}
