package logging

import (
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// 1行1JSON。メッセージ側の JSON がヘッダにマージされる
const header = `{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`

var std = New("agarwood", "info", nil)

// New は JSON ヘッダ付きの gommon ロガーを作る。out が nil なら標準出力
func New(prefix, level string, out io.Writer) *log.Logger {
	l := log.New(prefix)
	l.SetHeader(header)
	l.SetLevel(ParseLevel(level))
	if out != nil {
		l.SetOutput(out)
	}
	return l
}

// SetDefault は Info/Audit/Security/Error の出力先を差し替える
func SetDefault(l *log.Logger) {
	if l != nil {
		std = l
	}
}

func Default() *log.Logger {
	return std
}

func ParseLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// リクエスト情報 + action + fields
func entry(c echo.Context, kind, action string, fields log.JSON) log.JSON {
	j := log.JSON{"kind": kind, "action": action}
	if c != nil {
		req := c.Request()
		j["ip"] = c.RealIP()
		j["method"] = req.Method
		j["path"] = req.URL.Path
		if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
			j["req_id"] = rid
		}
		if uid, ok := c.Get("user_id").(string); ok && uid != "" {
			j["user_id"] = uid
		}
	}
	if len(fields) > 0 {
		j["fields"] = fields
	}
	return j
}

func Info(c echo.Context, action string, fields log.JSON) {
	std.Infoj(entry(c, "info", action, fields))
}

// 注文作成など後から追いたい操作
func Audit(c echo.Context, action string, fields log.JSON) {
	std.Infoj(entry(c, "audit", action, fields))
}

// 認証失敗
func Security(c echo.Context, action string, fields log.JSON) {
	std.Warnj(entry(c, "security", action, fields))
}

func Error(c echo.Context, action string, err error, fields log.JSON) {
	j := entry(c, "error", action, fields)
	if err != nil {
		j["err"] = err.Error()
	}
	std.Errorj(j)
}
