// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for navigation and filtering.
type Category struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name        string    // Unique display name of the category.
	Slug        string    // URL-safe identifier, derived from Name when not supplied.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when this category was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
