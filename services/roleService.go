package services

import (
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/helper"
	"github.com/kalviumcommunity/s81-Kausiki-CraveCart/models"
)

// ResolveRole computes a user's role from the admin allow-list and kitchen
// ownership. Admin wins over kitchen, kitchen over customer. Pure function:
// callers persist the result themselves when it differs from the stored role.
func ResolveRole(email string, ownsKitchen bool, adminEmails []string) string {
	normalized := helper.NormalizeEmail(email)
	for _, admin := range adminEmails {
		if normalized == helper.NormalizeEmail(admin) {
			return models.RoleAdmin
		}
	}
	if ownsKitchen {
		return models.RoleKitchen
	}
	return models.RoleCustomer
}
