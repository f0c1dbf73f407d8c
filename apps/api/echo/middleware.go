package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prachishaw/ClassCapsule/core/user"
)

const contextUserKey = "user"

// sessionMiddleware lets authenticated requests through with the identity stored under contextUserKey.
// Anonymous requests are redirected to the login view.
func sessionMiddleware(gate *user.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, ok := gate.Current()
			if !ok {
				return ctx.Redirect(http.StatusFound, user.LoginPath)
			}
			ctx.Set(contextUserKey, id)
			return next(ctx)
		}
	}
}

func getContextUser(ctx echo.Context) (user.Identity, bool) {
	id, ok := ctx.Get(contextUserKey).(user.Identity)
	return id, ok
}
