package server

import (
	"app/internal/config"
	"app/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// echo.Validator実装（go-playground/validator）
type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// New はルーティング済みのechoを組み立てる。
func New(cfg config.Config, logger *zerolog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = &requestValidator{v: validator.New()}

	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, cfg, h)
	return e
}

func Start(addr string, cfg config.Config, logger *zerolog.Logger, h Handlers) error {
	e := New(cfg, logger, h)
	return e.Start(addr)
}
