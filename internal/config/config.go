package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"

	devJWTSecret = "dev_secret_change_me"
)

// Configはアプリ全体の設定
type Config struct {
	Port        string `default:"8080"`     // サーバーポート
	StoreDriver string `default:"postgres"` // postgres / mongo / memory

	DatabaseURL      string // あればPOSTGRES_*より優先
	PostgresHost     string `default:"localhost"`
	PostgresPort     int    `default:"5432"`
	PostgresUser     string `default:"postgres"`
	PostgresPassword string `default:"postgres"`
	PostgresDB       string `default:"agarwood"`
	PostgresSSLMode  string `default:"disable"`

	MongoURL string `default:"mongodb://localhost:27017"`
	MongoDB  string `default:"agarwood"`

	JWTSecret      string        // JWT署名シークレット（dev以外は必須）
	AccessTokenTTL time.Duration `default:"30m"`

	GoEnv       string   `default:"dev"` // dev/prod
	AdminAPIKey string   // 空なら管理APIは誰でも叩ける
	CORSOrigins []string // 未設定なら *
	LogLevel    string   `default:"info"`
}

// Loadは .env → 環境変数 → デフォルト値 の順で埋める
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv は getenv から設定を組み立てる（テストから差し替え可）
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:             getenv("PORT"),
		StoreDriver:      strings.ToLower(getenv("STORE_DRIVER")),
		DatabaseURL:      getenv("DATABASE_URL"),
		PostgresHost:     getenv("POSTGRES_HOST"),
		PostgresUser:     getenv("POSTGRES_USER"),
		PostgresPassword: getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getenv("POSTGRES_DB"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE"),
		MongoURL:         getenv("MONGO_URL"),
		MongoDB:          getenv("MONGO_DB"),
		JWTSecret:        getenv("JWT_SECRET"),
		GoEnv:            getenv("GO_ENV"),
		AdminAPIKey:      getenv("ADMIN_API_KEY"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL")),
	}

	if v := getenv("POSTGRES_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("POSTGRES_PORT must be number: %w", err)
		}
		cfg.PostgresPort = port
	}
	if v := getenv("ACCESS_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be duration: %w", err)
		}
		cfg.AccessTokenTTL = ttl
	}
	cfg.CORSOrigins = splitList(getenv("CORS_ORIGINS"))

	//空の項目だけデフォルトで埋まる
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply defaults: %w", err)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	//必須チェック
	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverMongo, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be one of postgres, mongo, memory: %q", cfg.StoreDriver)
	}
	if cfg.AccessTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.GoEnv == "dev"
}

// PostgresDSN は DATABASE_URL か POSTGRES_* から URL 形式の DSN を作る
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": {c.PostgresSSLMode}}.Encode(),
	}
	return u.String()
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
