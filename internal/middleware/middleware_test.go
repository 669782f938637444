package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "agarwood/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// helper
// =====================

const testSecret = "test_secret"

type okResponse struct {
	UserID string `json:"user_id"`
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(testSecret, time.Hour)
}

func mustToken(t *testing.T, s *auth.JWTService, userID string, now time.Time) string {
	t.Helper()
	tok, _, err := s.Issue(userID, now)
	require.NoError(t, err)
	return tok
}

// ミドルウェアを通したあと user_id を返すだけのハンドラ
func serve(t *testing.T, mw echo.MiddlewareFunc, authz string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		uid, _ := c.Get(CtxUserIDKey).(string)
		return c.JSON(http.StatusOK, okResponse{UserID: uid})
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// =====================
// AuthJWT
// =====================

func TestAuthJWT_ValidToken(t *testing.T) {
	s := newJWT()
	rec := serve(t, AuthJWT(s), "Bearer "+mustToken(t, s, "u1", time.Now()))

	require.Equal(t, http.StatusOK, rec.Code)
	var body okResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.UserID)
}

func TestAuthJWT_Rejects(t *testing.T) {
	s := newJWT()
	other := auth.NewJWTService("other_secret", time.Hour)

	tests := []struct {
		name   string
		authz  string
		detail string
	}{
		{name: "no header", authz: "", detail: "Not authenticated"},
		{name: "not bearer", authz: "Basic abc", detail: "Could not validate credentials"},
		{name: "empty token", authz: "Bearer  ", detail: "Could not validate credentials"},
		{name: "garbage", authz: "Bearer garbage", detail: "Could not validate credentials"},
		{name: "wrong secret", authz: "Bearer " + mustToken(t, other, "u1", time.Now()), detail: "Could not validate credentials"},
		{name: "expired", authz: "Bearer " + mustToken(t, s, "u1", time.Now().Add(-2*time.Hour)), detail: "Could not validate credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, AuthJWT(s), tt.authz)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.detail, decodeDetail(t, rec))
		})
	}
}

func TestOptionalAuthJWT(t *testing.T) {
	s := newJWT()

	//ヘッダ無しはゲスト
	rec := serve(t, OptionalAuthJWT(s), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body okResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "", body.UserID)

	//有効なら user_id が入る
	rec = serve(t, OptionalAuthJWT(s), "Bearer "+mustToken(t, s, "u9", time.Now()))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u9", body.UserID)

	//壊れたトークンはゲストに落とさず401
	rec = serve(t, OptionalAuthJWT(s), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

// =====================
// AdminKeyGuard
// =====================

func serveAdmin(t *testing.T, key, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.POST("/products/seed", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, AdminKeyGuard(key))

	req := httptest.NewRequest(http.MethodPost, "/products/seed", nil)
	if header != "" {
		req.Header.Set(HeaderAdminKey, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminKeyGuard(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{name: "open when unset", key: "", header: "", want: http.StatusNoContent},
		{name: "match", key: "s3cret", header: "s3cret", want: http.StatusNoContent},
		{name: "missing", key: "s3cret", header: "", want: http.StatusUnauthorized},
		{name: "mismatch", key: "s3cret", header: "nope", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveAdmin(t, tt.key, tt.header)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
