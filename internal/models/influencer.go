package models

import (
	"database/sql"

	"github.com/google/uuid"
)

// Influencer represents an influencer profile.
type Influencer struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Handle   sql.NullString `json:"handle"`
	Platform sql.NullString `json:"platform"`
	Niche    sql.NullString `json:"niche"`
}

// NullString wraps s as a present optional value.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
