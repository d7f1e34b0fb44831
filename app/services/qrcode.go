package services

import "fmt"

// QRGenerator turns a registration payload into whatever representation the
// presentation layer serves (an image path, a data URI). The core only stores
// the returned string.
type QRGenerator interface {
	Generate(payload string) (string, error)
}

// PayloadQR returns the payload itself; rendering the actual image is the
// caller's concern.
type PayloadQR struct{}

func (PayloadQR) Generate(payload string) (string, error) {
	return payload, nil
}

// RegistrationPayload builds the canonical QR payload for a registration.
func RegistrationPayload(eventID, registrationID, userID string) string {
	return fmt.Sprintf("CAMPUS_EVENT_%s_%s_%s", eventID, registrationID, userID)
}
