package authz

import (
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActor_IsAdmin(t *testing.T) {
	t.Run("admin role present", func(t *testing.T) {
		actor := Actor{UserID: uuid.New(), Roles: []string{"customer", constants.RoleAdmin}}
		assert.True(t, actor.IsAdmin())
	})

	t.Run("no roles", func(t *testing.T) {
		actor := Actor{UserID: uuid.New()}
		assert.False(t, actor.IsAdmin())
	})
}

func TestActor_CanAccess(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	owner := Actor{UserID: ownerID}
	other := Actor{UserID: otherID}
	admin := Actor{UserID: otherID, Roles: []string{constants.RoleAdmin}}

	t.Run("owner can access own order", func(t *testing.T) {
		order := &entity.Order{UserID: ownerID}
		assert.True(t, owner.CanAccess(order))
		assert.False(t, other.CanAccess(order))
	})

	t.Run("admin can access any order", func(t *testing.T) {
		order := &entity.Order{UserID: ownerID}
		assert.True(t, admin.CanAccess(order))
	})

	t.Run("cart ownership", func(t *testing.T) {
		cart := &entity.Cart{UserID: ownerID}
		assert.True(t, owner.CanAccess(cart))
		assert.False(t, other.CanAccess(cart))
	})

	t.Run("payment follows its order owner", func(t *testing.T) {
		payment := &entity.Payment{Order: &entity.Order{UserID: ownerID}}
		assert.True(t, owner.CanAccess(payment))
		assert.False(t, other.CanAccess(payment))
	})

	t.Run("payment without loaded order is denied for non-admin", func(t *testing.T) {
		payment := &entity.Payment{}
		assert.False(t, owner.CanAccess(payment))
		assert.True(t, admin.CanAccess(payment))
	})

	t.Run("wishlist ownership", func(t *testing.T) {
		wish := &entity.Wishlist{UserID: ownerID}
		assert.True(t, owner.CanAccess(wish))
		assert.False(t, other.CanAccess(wish))
	})

	t.Run("review ownership", func(t *testing.T) {
		review := &entity.ProductReview{UserID: ownerID}
		assert.True(t, owner.CanAccess(review))
		assert.False(t, other.CanAccess(review))
	})

	t.Run("unknown resource type is denied", func(t *testing.T) {
		assert.False(t, owner.CanAccess("not a resource"))
		assert.False(t, owner.CanAccess(nil))
	})

	t.Run("nil resource pointer is denied", func(t *testing.T) {
		var order *entity.Order
		assert.False(t, owner.CanAccess(order))
	})
}
