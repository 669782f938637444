package auth

import (
	"context"
	"errors"
	"strings"

	"agarwood/internal/domain/model"
	"agarwood/internal/repository"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// RegisterUserUsecaseは会員登録の処理。登録後そのままトークンを返す
type RegisterUserUsecase struct {
	userRepo  repository.UserRepository
	validator InputValidator
	hasher    PasswordHasher
	issuer    AccessTokenIssuer
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	validator InputValidator,
	hasher PasswordHasher,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:  userRepo,
		validator: validator,
		hasher:    hasher,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (TokenOutput, error) {
	email := strings.TrimSpace(in.Email)

	if err := u.validator.ValidateRegister(ctx, email, in.Password, in.FullName); err != nil {
		return TokenOutput{}, err
	}

	// email重複チェック
	_, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return TokenOutput{}, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return TokenOutput{}, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return TokenOutput{}, err
	}

	now := u.clock.Now()
	user := model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hashed, // 平文は保存しない
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 同時登録は unique 制約で弾かれる
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return TokenOutput{}, ErrEmailAlreadyExists
		}
		return TokenOutput{}, err
	}

	token, _, err := u.issuer.Issue(user.ID, now)
	if err != nil {
		return TokenOutput{}, err
	}
	return bearer(token), nil
}
