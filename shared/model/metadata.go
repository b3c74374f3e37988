package model

import "time"

// Metadata carries the server-managed timestamps every entity has.
// CreatedAt is set once at creation; UpdatedAt is refreshed on every mutation.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
