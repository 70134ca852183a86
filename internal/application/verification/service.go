package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-api-whatsapp/internal/domain"
	"github.com/go-api-whatsapp/internal/infrastructure/twilio"
	"github.com/go-api-whatsapp/internal/pkg/phone"
	"github.com/go-api-whatsapp/internal/pkg/validate"
)

type SendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type VerifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// CodeStore is the narrow interface the service needs from a code store.
// The in-memory store satisfies it; a shared external store could too.
type CodeStore interface {
	Issue(phoneNumber string) (string, error)
	Verify(phoneNumber, code string) error
}

type Service interface {
	// SendCode issues a fresh code for the number and delivers it over
	// WhatsApp. Returns the code and the provider's message SID.
	SendCode(ctx context.Context, req SendCodeRequest) (code, messageSID string, err error)
	// VerifyCode checks and consumes a previously issued code.
	VerifyCode(ctx context.Context, req VerifyCodeRequest) error
}

type service struct {
	codes     CodeStore
	messenger twilio.Messenger
}

func NewService(codes CodeStore, messenger twilio.Messenger) Service {
	return &service{codes: codes, messenger: messenger}
}

func (s *service) SendCode(ctx context.Context, req SendCodeRequest) (string, string, error) {
	if err := validate.Struct(req); err != nil {
		return "", "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	code, err := s.codes.Issue(req.PhoneNumber)
	if err != nil {
		return "", "", err
	}
	res, err := s.messenger.Send(ctx, phone.ToWhatsApp(req.PhoneNumber), "Your verification code is: "+code)
	if err != nil {
		// The issued code stays in the store; the caller may retry sending
		// and the sweeper reclaims it otherwise.
		slog.Error("failed to deliver verification code", "phone", req.PhoneNumber, "err", err)
		return "", "", err
	}
	return code, res.SID, nil
}

func (s *service) VerifyCode(_ context.Context, req VerifyCodeRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.codes.Verify(req.PhoneNumber, req.Code)
}
