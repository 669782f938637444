package usecase

import (
	"context"
	"net/http"
	"strings"

	"agarwood/internal/domain/model"
	repo "agarwood/internal/repository"
	"agarwood/internal/validator"
)

const contactListLimit = 100

type ContactUsecase struct {
	contacts repo.ContactRepository
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewContactUsecase(contacts repo.ContactRepository, idGen IDGenerator, clock Clock) *ContactUsecase {
	return &ContactUsecase{contacts: contacts, idGen: idGen, clock: clock}
}

type SubmitContactInput struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

func (u *ContactUsecase) Submit(ctx context.Context, in SubmitContactInput) (model.ContactMessage, error) {
	if err := validator.ValidateContact(in.FullName, in.Email, in.Subject, in.Message); err != nil {
		return model.ContactMessage{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := model.ContactMessage{
		ID:        u.idGen.NewID(),
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: u.clock.Now(),
	}
	if err := u.contacts.Create(ctx, msg); err != nil {
		return model.ContactMessage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msg, nil
}

// 新しい順に最大100件
func (u *ContactUsecase) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := u.contacts.List(ctx, contactListLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msgs, nil
}
