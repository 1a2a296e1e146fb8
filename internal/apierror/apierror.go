// Package apierror defines the error taxonomy for the HTTP surface.
// Every 4xx/5xx response body is the envelope {"error": mensaje}; handlers
// map service errors to status codes through this package so internal
// details (driver errors, SQL) never reach the client.
package apierror

import "errors"

type Error struct {
	Status  int
	Mensaje string
}

func (e *Error) Error() string { return e.Mensaje }

// BadRequest covers missing/invalid input and business-rule violations.
func BadRequest(mensaje string) *Error { return &Error{Status: 400, Mensaje: mensaje} }

func NotFound(mensaje string) *Error { return &Error{Status: 404, Mensaje: mensaje} }

// StatusOf returns the HTTP status for err. Anything that is not an
// *Error is treated as a store failure.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 500
}

// MensajeOf returns the client-facing message for err. Store failures
// surface as a generic unavailable message.
func MensajeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Mensaje
	}
	return "Servicio no disponible"
}
