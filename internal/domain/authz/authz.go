// Package authz implements ownership-based access control for user-scoped
// resources. A resource may be accessed by its owning user or by an admin.
package authz

import (
	"slices"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID // Authenticated user ID
	Roles  []string  // Roles carried in the access token
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return slices.Contains(a.Roles, constants.RoleAdmin)
}

// CanAccess reports whether the actor may read or mutate the given resource.
// Admins may access everything; other actors only resources they own.
// Unknown resource types are denied.
func (a Actor) CanAccess(resource any) bool {
	if a.IsAdmin() {
		return true
	}

	switch r := resource.(type) {
	case *entity.Cart:
		return r != nil && r.UserID == a.UserID
	case *entity.Order:
		return r != nil && r.UserID == a.UserID
	case *entity.Payment:
		return r != nil && r.Order != nil && r.Order.UserID == a.UserID
	case *entity.Wishlist:
		return r != nil && r.UserID == a.UserID
	case *entity.ProductReview:
		return r != nil && r.UserID == a.UserID
	default:
		return false
	}
}
