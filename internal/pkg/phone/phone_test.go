package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWhatsApp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare number", "+15551234567", "whatsapp:+15551234567"},
		{"already prefixed", "whatsapp:+15551234567", "whatsapp:+15551234567"},
		{"empty", "", "whatsapp:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWhatsApp(tt.in))
		})
	}
}

func TestToWhatsAppIdempotent(t *testing.T) {
	once := ToWhatsApp("+27831234567")
	assert.Equal(t, once, ToWhatsApp(once))
}
