package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-api-whatsapp/internal/domain"
	"github.com/go-api-whatsapp/internal/infrastructure/twilio"
	"github.com/go-api-whatsapp/internal/pkg/phone"
	"github.com/go-api-whatsapp/internal/pkg/validate"
)

type SendRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required"`
}

type Service interface {
	// Send relays one outbound WhatsApp message and returns the provider's
	// message SID and status verbatim.
	Send(ctx context.Context, req SendRequest) (*twilio.Result, error)
}

type service struct {
	messenger twilio.Messenger
}

func NewService(messenger twilio.Messenger) Service {
	return &service{messenger: messenger}
}

func (s *service) Send(ctx context.Context, req SendRequest) (*twilio.Result, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	res, err := s.messenger.Send(ctx, phone.ToWhatsApp(req.To), req.Body)
	if err != nil {
		slog.Error("provider send failed", "to", req.To, "err", err)
		return nil, err
	}
	return res, nil
}
