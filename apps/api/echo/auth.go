package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/user"
)

type authApi struct {
	gate     *user.Gate
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, guard echo.MiddlewareFunc, gate *user.Gate, validate *validator.Validate) {
	api := authApi{gate: gate, validate: validate}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)
	ag.POST("/logout", api.logout)
	ag.POST("/demo/:role", api.demo)

	g.GET("/me", api.me, guard)
}

// LoginHint is the body of the anonymous entry view.
type LoginHint struct {
	Message string            `json:"message"`
	Login   string            `json:"login"`
	Demo    map[string]string `json:"demo"`
	Roles   []user.RoleOption `json:"roles"`
}

func loginHint(ctx echo.Context) error {
	demo := make(map[string]string, len(user.AllRoles))
	for _, r := range user.AllRoles {
		demo[string(r)] = "/v1/auth/demo/" + string(r)
	}
	return ctx.JSON(http.StatusOK, LoginHint{
		Message: "please log in to continue",
		Login:   "/v1/auth/login",
		Demo:    demo,
		Roles:   user.Roles,
	})
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return api.authenticated(ctx, http.StatusOK, api.gate.Login(data))
}

func (api *authApi) register(ctx echo.Context) error {
	var data user.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Registration")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return api.authenticated(ctx, http.StatusCreated, api.gate.Register(data))
}

// authenticated waits for the gate outcome and responds with the new identity.
func (api *authApi) authenticated(ctx echo.Context, code int, result <-chan bool) error {
	ok, err := user.Await(ctx.Request().Context(), result)
	if err != nil {
		return errors.Wrap(err, "awaiting authentication")
	}
	id, current := api.gate.Current()
	if !ok || !current {
		return errAuthenticationFailed
	}
	return ctx.JSON(code, id)
}

func (api *authApi) logout(ctx echo.Context) error {
	api.gate.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) demo(ctx echo.Context) error {
	role, ok := user.ParseRole(ctx.Param("role"))
	if !ok {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "invalid role"})
	}
	id, _ := user.DemoIdentity(role)
	api.gate.AssumeDemoIdentity(id)
	return ctx.JSON(http.StatusOK, id)
}

func (api *authApi) me(ctx echo.Context) error {
	id, ok := getContextUser(ctx)
	if !ok {
		return errors.New("identity not found in echo.Context")
	}
	return ctx.JSON(http.StatusOK, id)
}
