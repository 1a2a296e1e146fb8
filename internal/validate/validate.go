package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reFecha  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	reMotivo = regexp.MustCompile(`^(terminado|cancelado)$`)
)

// ID parses a positive integer path parameter.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Fecha validates a YYYY-MM-DD date filter. Empty is allowed (no filter).
// The shape check alone admits impossible dates like 2026-99-99, so the
// value must also parse as a calendar date.
func Fecha(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if !reFecha.MatchString(s) {
		return s, false
	}
	_, err := time.Parse("2006-01-02", s)
	return s, err == nil
}

// Motivo validates the optional archival reason on service deletion.
// Empty is allowed (the archived row keeps the current estado).
func Motivo(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reMotivo.MatchString(s)
}
