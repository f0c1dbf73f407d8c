package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core/theme"
)

type themeApi struct {
	svc      *theme.Service
	validate *validator.Validate
}

func registerThemeAPI(g *echo.Group, svc *theme.Service, validate *validator.Validate) {
	api := themeApi{svc: svc, validate: validate}

	tg := g.Group("/theme")
	tg.GET("", api.retrieve)
	tg.PUT("", api.update)
	tg.POST("/toggle", api.toggle)
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
	Dark  bool   `json:"dark"`
}

// Handlers

func (api *themeApi) retrieve(ctx echo.Context) error {
	return api.respond(ctx)
}

func (api *themeApi) update(ctx echo.Context) error {
	var data ThemeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ThemeRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	dark, _ := theme.Parse(data.Theme)
	api.svc.Set(dark)
	return api.respond(ctx)
}

func (api *themeApi) toggle(ctx echo.Context) error {
	api.svc.Toggle()
	return api.respond(ctx)
}

func (api *themeApi) respond(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ThemeResponse{Theme: api.svc.Name(), Dark: api.svc.IsDark()})
}
