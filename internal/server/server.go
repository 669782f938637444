package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"agarwood/internal/config"
	"agarwood/internal/handler"
	"agarwood/internal/middleware"
	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// Handlers はルートに載せるハンドラ一式
type Handlers struct {
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Auth         *handler.AuthHandler
	Contact      *handler.ContactHandler
}

// New は共通ミドルウェアとルートを載せた echo を返す
func New(cfg config.Config, logger *log.Logger, h Handlers, verifier auth.TokenVerifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger = logger
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderAdminKey,
		},
	}))
	e.Use(requestLogger(logger))

	RegisterRoutes(e, cfg, h, verifier)
	return e
}

// 1リクエスト1行のJSONログ
func requestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			j := log.JSON{
				"kind":       "access",
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"req_id":     v.RequestID,
				"ip":         v.RemoteIP,
			}
			if uid, ok := c.Get(middleware.CtxUserIDKey).(string); ok && uid != "" {
				j["user_id"] = uid
			}
			if v.Error != nil {
				j["err"] = v.Error.Error()
			}
			logger.Infoj(j)
			return nil
		},
	})
}

// Start は ctx がキャンセルされるまで待ち受け、その後 graceful shutdown する
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
