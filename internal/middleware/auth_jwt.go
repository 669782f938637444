package middleware

import (
	"net/http"
	"strings"

	"agarwood/internal/logging"
	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey = "user_id" // string
)

// bearerAuth用のJWT検証ミドルウェア。トークンが無ければ401
func AuthJWT(verifier auth.TokenVerifier) echo.MiddlewareFunc {
	return bearerAuth(verifier, false)
}

// OptionalAuthJWT はヘッダが無ければゲストとして通す。
// ヘッダがあるのに検証できないときは401（ゲスト扱いにはしない）
func OptionalAuthJWT(verifier auth.TokenVerifier) echo.MiddlewareFunc {
	return bearerAuth(verifier, true)
}

func bearerAuth(verifier auth.TokenVerifier, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				if optional {
					return next(c)
				}
				return c.JSON(http.StatusUnauthorized, errorJSON("Not authenticated"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "malformed header")
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return unauthorized(c, "empty token")
			}

			userID, err := verifier.Verify(rawToken)
			if err != nil || userID == "" {
				return unauthorized(c, "invalid token")
			}

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, reason string) error {
	logging.Security(c, "auth.token_rejected", map[string]any{"reason": reason})
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, errorJSON("Could not validate credentials"))
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Detail: msg}
}
