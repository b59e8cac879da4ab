// Package entity holds the fields shared by every stored catalog entity.
package entity

import (
	"time"
)

// Identifiable is implemented by entities addressed by an integer key.
type Identifiable interface {
	GetID() int
}

// BaseEntity contains the columns every catalog table carries.
// Rows are never physically removed: Delete clears Active.
type BaseEntity struct {
	// ID is the store-assigned primary key (0 until created)
	ID int `db:"id" json:"id"`

	// Active is false for soft-deleted rows
	Active bool `db:"active" json:"active"`

	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// GetID returns the primary key.
func (b *BaseEntity) GetID() int {
	return b.ID
}
