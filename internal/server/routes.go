package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Users  *handler.UserHandler
	Books  *handler.BookHandler
	Orders *handler.OrderHandler
	Cart   *handler.CartHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Users.RegisterRoutes(e, cfg)
	h.Books.RegisterRoutes(e, cfg)
	h.Orders.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)
}
