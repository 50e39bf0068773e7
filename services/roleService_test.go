package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

func TestResolveRole(t *testing.T) {
	admins := []string{"admin@cravecart.in"}

	assert.Equal(t, models.RoleCustomer, ResolveRole("user@example.com", false, admins))
	assert.Equal(t, models.RoleKitchen, ResolveRole("user@example.com", true, admins))
	assert.Equal(t, models.RoleAdmin, ResolveRole("admin@cravecart.in", false, admins))

	// admin wins even when the user also owns a kitchen
	assert.Equal(t, models.RoleAdmin, ResolveRole("admin@cravecart.in", true, admins))

	// comparison is case and whitespace insensitive
	assert.Equal(t, models.RoleAdmin, ResolveRole("  Admin@CraveCart.in ", false, admins))

	assert.Equal(t, models.RoleCustomer, ResolveRole("user@example.com", false, nil))
}
