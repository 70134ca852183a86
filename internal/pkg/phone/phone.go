// Package phone holds pure helpers for the provider's addressing scheme,
// kept free of network concerns so they can be tested in isolation.
package phone

import "strings"

// Scheme is the prefix the provider requires on WhatsApp addresses.
const Scheme = "whatsapp:"

// ToWhatsApp prefixes number with the WhatsApp scheme marker. It is
// idempotent: an already-prefixed number is returned unchanged.
func ToWhatsApp(number string) string {
	if strings.HasPrefix(number, Scheme) {
		return number
	}
	return Scheme + number
}
