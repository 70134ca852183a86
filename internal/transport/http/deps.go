package http

import (
	"github.com/go-api-whatsapp/internal/application/verification"
	jwtinfra "github.com/go-api-whatsapp/internal/infrastructure/jwt"
	"github.com/go-api-whatsapp/internal/infrastructure/twilio"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Codes       verification.CodeStore
	Messenger   twilio.Messenger
	JWTProvider *jwtinfra.Provider
}
