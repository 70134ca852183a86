package twilio

import (
	"context"
	"crypto/rand"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
)

// MockMessenger simulates the provider for tests and local development.
// Every send succeeds with a fabricated SID unless Err is set.
type MockMessenger struct {
	mu   sync.Mutex
	Err  error
	Sent []MockMessage
}

// MockMessage records one simulated delivery.
type MockMessage struct {
	To   string
	Body string
	SID  string
}

func (m *MockMessenger) Send(_ context.Context, to, body string) (*Result, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	sid := "SM" + ulid.MustNew(ulid.Now(), rand.Reader).String()
	slog.Debug("simulating provider send", "to", to, "sid", sid)

	m.mu.Lock()
	m.Sent = append(m.Sent, MockMessage{To: to, Body: body, SID: sid})
	m.mu.Unlock()
	return &Result{SID: sid, Status: "queued"}, nil
}
