package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// メール重複（unique制約違反）
	ErrDuplicateEmail = errors.New("email already exists")
)
