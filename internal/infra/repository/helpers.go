package repository

import (
	"strings"

	"github.com/google/uuid"
)

// uuid列に不正な文字列を渡すとpostgresがエラーになるので先に弾く
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// LIKE用に % と _ をエスケープ
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
