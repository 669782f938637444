package usecase

import (
	"context"
	"errors"
	"net/http"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
)

// /auth/me のプロフィール参照・更新
type ProfileUsecase struct {
	users repo.UserRepository
	clock Clock
}

// DI
func NewProfileUsecase(users repo.UserRepository, clock Clock) *ProfileUsecase {
	return &ProfileUsecase{users: users, clock: clock}
}

// PUT /auth/me の入力。null/未指定は変更しない
type UpdateProfileInput struct {
	FullName model.Optional[string] `json:"full_name"`
	Phone    model.Optional[string] `json:"phone"`
	Address  model.Optional[string] `json:"address"`
	City     model.Optional[string] `json:"city"`
	District model.Optional[string] `json:"district"`
	Ward     model.Optional[string] `json:"ward"`
	ZipCode  model.Optional[string] `json:"zip_code"`
}

func (in UpdateProfileInput) empty() bool {
	return !in.FullName.Set && !in.Phone.Set && !in.Address.Set && !in.City.Set &&
		!in.District.Set && !in.Ward.Set && !in.ZipCode.Set
}

func (u *ProfileUsecase) Me(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// UpdateMe は指定された項目だけ上書きする。
func (u *ProfileUsecase) UpdateMe(ctx context.Context, userID string, in UpdateProfileInput) (model.User, error) {
	if in.empty() {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	user, err := u.Me(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	in.FullName.ApplyTo(&user.FullName)
	in.Phone.ApplyTo(&user.Phone)
	in.Address.ApplyTo(&user.Address)
	in.City.ApplyTo(&user.City)
	in.District.ApplyTo(&user.District)
	in.Ward.ApplyTo(&user.Ward)
	in.ZipCode.ApplyTo(&user.ZipCode)
	user.UpdatedAt = u.clock.Now()

	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.User{}, NewHTTPError(http.StatusNotFound, "User not found")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}
