package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/models"
)

// optional trims s and turns blank values into nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// optionalDate turns an empty date into nil. Unreadable dates are kept so
// validation can report them.
func optionalDate(d *models.Date) *models.Date {
	if d == nil || (d.IsZero() && !d.Invalid()) {
		return nil
	}
	return d
}

// optionalID treats zero and negative ids as unset.
func optionalID(id *int) *int {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

// DeleteConfirmationDTO describes what a delete will affect.
type DeleteConfirmationDTO struct {
	ID      int            `json:"id"`
	Label   string         `json:"label"`
	Cascade map[string]int `json:"cascade,omitempty"`
	Detach  map[string]int `json:"detach,omitempty"`
}
