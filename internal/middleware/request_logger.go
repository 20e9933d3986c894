package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// リクエストごとにアクセスログを出す。
// request_idはヘッダから引き継ぎ、無ければ発番する
func RequestLogger(logger *zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set("X-Request-ID", requestID)

			start := time.Now()

			err := next(c)
			if err != nil {
				//ステータス確定のためここでecho既定のハンドラへ渡す
				c.Error(err)
			}

			logger.Info().
				Str("request_id", requestID).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("request completed")

			return nil
		}
	}
}
