package messaging

import (
	"context"
	"testing"

	"github.com/go-api-whatsapp/internal/domain"
	"github.com/go-api-whatsapp/internal/infrastructure/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMessenger struct{ mock.Mock }

func (m *mockMessenger) Send(ctx context.Context, to, body string) (*twilio.Result, error) {
	args := m.Called(ctx, to, body)
	if r, _ := args.Get(0).(*twilio.Result); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSendNormalizesRecipient(t *testing.T) {
	msgr := new(mockMessenger)
	svc := NewService(msgr)

	msgr.On("Send", mock.Anything, "whatsapp:+15551234567", "hello").
		Return(&twilio.Result{SID: "SM456", Status: "queued"}, nil)

	res, err := svc.Send(context.Background(), SendRequest{To: "+15551234567", Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "SM456", res.SID)
	assert.Equal(t, "queued", res.Status)
	msgr.AssertExpectations(t)
}

func TestSendKeepsExistingScheme(t *testing.T) {
	msgr := new(mockMessenger)
	svc := NewService(msgr)

	msgr.On("Send", mock.Anything, "whatsapp:+15551234567", "hello").
		Return(&twilio.Result{SID: "SM457", Status: "queued"}, nil)

	_, err := svc.Send(context.Background(), SendRequest{To: "whatsapp:+15551234567", Body: "hello"})
	require.NoError(t, err)
	msgr.AssertExpectations(t)
}

func TestSendMissingFields(t *testing.T) {
	svc := NewService(new(mockMessenger))

	_, err := svc.Send(context.Background(), SendRequest{To: "+15551234567"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.Send(context.Background(), SendRequest{Body: "hello"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSendSurfacesProviderError(t *testing.T) {
	msgr := new(mockMessenger)
	svc := NewService(msgr)

	msgr.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrProvider)

	_, err := svc.Send(context.Background(), SendRequest{To: "+15551234567", Body: "hello"})
	assert.ErrorIs(t, err, domain.ErrProvider)
}
