package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"agarwood/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactUsecase_SubmitAndList(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	clock := newClock()
	uc := NewContactUsecase(s.Contacts(), &seqIDGen{prefix: "msg"}, clock)

	first, err := uc.Submit(ctx, SubmitContactInput{
		FullName: " Lan ", Email: "lan@example.com", Subject: "Hỏi giá", Message: "Còn hàng không?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lan", first.FullName)
	assert.Equal(t, "msg-1", first.ID)

	clock.Advance(time.Minute)
	second, err := uc.Submit(ctx, SubmitContactInput{
		FullName: "Minh", Email: "minh@example.com", Phone: "0900", Subject: "Ship", Message: "Ship ra Hà Nội?",
	})
	require.NoError(t, err)

	msgs, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, second.ID, msgs[0].ID)
	assert.Equal(t, first.ID, msgs[1].ID)
}

func TestContactUsecase_SubmitValidation(t *testing.T) {
	uc := NewContactUsecase(memstore.New().Contacts(), &seqIDGen{prefix: "msg"}, newClock())

	tests := []struct {
		name string
		in   SubmitContactInput
		msg  string
	}{
		{name: "no name", in: SubmitContactInput{Email: "a@b.co", Subject: "s", Message: "m"}, msg: "Full name is required"},
		{name: "no subject", in: SubmitContactInput{FullName: "A", Email: "a@b.co", Message: "m"}, msg: "Subject is required"},
		{name: "no message", in: SubmitContactInput{FullName: "A", Email: "a@b.co", Subject: "s"}, msg: "Message is required"},
		{name: "bad email", in: SubmitContactInput{FullName: "A", Email: "nope", Subject: "s", Message: "m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), tt.in)
			assertHTTPError(t, err, http.StatusBadRequest, tt.msg)
		})
	}
}
