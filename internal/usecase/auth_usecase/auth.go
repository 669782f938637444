package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// 競合
	ErrEmailAlreadyExists = errors.New("email already registered")
	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// トークンが不正・期限切れ
	ErrInvalidToken = errors.New("could not validate credentials")
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID string, now time.Time) (token string, expiresAt time.Time, err error)
}

// JWTを検証して user_id を返す約束
type TokenVerifier interface {
	Verify(rawToken string) (userID string, err error)
}

// 入力チェック（validatorパッケージが実装）
type InputValidator interface {
	ValidateRegister(ctx context.Context, email, password, fullName string) error
	ValidateLogin(ctx context.Context, email, password string) error
}

// handlerがJSONにして返す
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func bearer(token string) TokenOutput {
	return TokenOutput{AccessToken: token, TokenType: "bearer"}
}
